package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/knowledge"
)

type kbFile struct {
	Items     []knowledge.NewItem `json:"items"`
	Templates []struct {
		Intent     string   `json:"intent"`
		Template   string   `json:"template"`
		Variations []string `json:"variations"`
	} `json:"templates"`
}

// loadKnowledgeBase imports knowledge items and response templates from a
// JSON file. Items failing validation are reported and skipped.
func (cli *commandLine) loadKnowledgeBase(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	var file kbFile
	if err = json.Unmarshal(raw, &file); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	ctx := context.Background()
	var created, skipped int
	for i := range file.Items {
		ni := file.Items[i]
		if err = ni.Validate(cli.validate); err != nil {
			logger.Printf("skipping item %d: %v", i+1, err)
			skipped++
			continue
		}
		if _, err = cli.knowledgeSvc.CreateItem(ctx, ni); err != nil {
			return errors.Wrapf(err, "creating item %d", i+1)
		}
		created++
	}

	var tplCreated int
	for i, t := range file.Templates {
		tpl := knowledge.Template{Intent: t.Intent, Template: t.Template, Variations: t.Variations}
		if _, err = cli.knowledgeSvc.CreateTemplate(ctx, tpl); err != nil {
			return errors.Wrapf(err, "creating template %d", i+1)
		}
		tplCreated++
	}

	fmt.Printf("knowledge base loaded: %d items (%d skipped), %d templates\n", created, skipped, tplCreated)
	return nil
}
