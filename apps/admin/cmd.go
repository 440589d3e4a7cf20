package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/storage/database"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db           *sqlx.DB
	knowledgeSvc *knowledge.Service
	validate     *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate                 - apply pending database migrations")
	fmt.Println("  loadkb -file FILE       - import knowledge base items from a JSON file")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loadKbCmd := flag.NewFlagSet("loadkb", flag.ExitOnError)
	loadKbFile := loadKbCmd.String("file", "", "Path to a JSON file of knowledge base items.")

	switch args[1] {
	case "migrate":
		return database.Migrate(cli.db)
	case "loadkb":
		if err := loadKbCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loadKbFile == "" {
			loadKbCmd.Usage()
			return errHelp
		}
		return cli.loadKnowledgeBase(*loadKbFile)
	default:
		cli.printUsage()
		return errHelp
	}
}
