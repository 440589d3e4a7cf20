package sqlxrepos

import (
	"context"
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/knowledge"
)

type knowledgeRepository struct {
	db *sqlx.DB
}

var _ knowledge.Repository = (*knowledgeRepository)(nil) // interface compliance check

func NewKnowledgeRepository(db *sqlx.DB) knowledge.Repository {
	return &knowledgeRepository{db: db}
}

func (repo *knowledgeRepository) CreateItem(ctx context.Context, item knowledge.Item) (knowledge.Item, error) {
	keywords, err := marshalStrings(item.Keywords)
	if err != nil {
		return knowledge.Item{}, errors.Wrap(err, "marshalling keywords")
	}
	err = repo.db.QueryRowxContext(ctx, `
		INSERT INTO knowledge_item (category, title, content, keywords)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.Category, item.Title, item.Content, keywords,
	).Scan(&item.ID)
	if err != nil {
		return knowledge.Item{}, errors.Wrap(err, "inserting knowledge item")
	}
	return item, nil
}

func (repo *knowledgeRepository) QueryAllItems(ctx context.Context) ([]knowledge.Item, error) {
	rows, err := repo.db.QueryxContext(ctx, `
		SELECT id, category, title, content, keywords
		FROM knowledge_item
		ORDER BY category, title`)
	if err != nil {
		return nil, errors.Wrap(err, "querying knowledge items")
	}
	defer func() { _ = rows.Close() }()

	items := make([]knowledge.Item, 0)
	for rows.Next() {
		var (
			item knowledge.Item
			raw  []byte
		)
		if err = rows.Scan(&item.ID, &item.Category, &item.Title, &item.Content, &raw); err != nil {
			return nil, errors.Wrap(err, "scanning knowledge item")
		}
		if err = json.Unmarshal(raw, &item.Keywords); err != nil {
			return nil, errors.Wrap(err, "unmarshalling keywords")
		}
		items = append(items, item)
	}
	return items, errors.Wrap(rows.Err(), "querying knowledge items")
}

func (repo *knowledgeRepository) CreateTemplate(ctx context.Context, tpl knowledge.Template) (knowledge.Template, error) {
	variations, err := marshalStrings(tpl.Variations)
	if err != nil {
		return knowledge.Template{}, errors.Wrap(err, "marshalling variations")
	}
	err = repo.db.QueryRowxContext(ctx, `
		INSERT INTO response_template (intent, template, variations)
		VALUES ($1, $2, $3)
		RETURNING id`,
		tpl.Intent, tpl.Template, variations,
	).Scan(&tpl.ID)
	if err != nil {
		return knowledge.Template{}, errors.Wrap(err, "inserting response template")
	}
	return tpl, nil
}

func (repo *knowledgeRepository) QueryAllTemplates(ctx context.Context) ([]knowledge.Template, error) {
	rows, err := repo.db.QueryxContext(ctx, `
		SELECT id, intent, template, variations
		FROM response_template
		ORDER BY intent`)
	if err != nil {
		return nil, errors.Wrap(err, "querying response templates")
	}
	defer func() { _ = rows.Close() }()

	tpls := make([]knowledge.Template, 0)
	for rows.Next() {
		var (
			tpl knowledge.Template
			raw []byte
		)
		if err = rows.Scan(&tpl.ID, &tpl.Intent, &tpl.Template, &raw); err != nil {
			return nil, errors.Wrap(err, "scanning response template")
		}
		if err = json.Unmarshal(raw, &tpl.Variations); err != nil {
			return nil, errors.Wrap(err, "unmarshalling variations")
		}
		tpls = append(tpls, tpl)
	}
	return tpls, errors.Wrap(rows.Err(), "querying response templates")
}

func marshalStrings(ss []string) ([]byte, error) {
	if ss == nil {
		ss = []string{}
	}
	return json.Marshal(ss)
}
