package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/darasa/core/knowledge"
)

type knowledgeRepository struct {
	db *knowledgeTable
}

var _ knowledge.Repository = (*knowledgeRepository)(nil) // interface compliance check

func NewKnowledgeRepository(db *DB) knowledge.Repository {
	return &knowledgeRepository{db: db.knowledge}
}

func (repo *knowledgeRepository) CreateItem(_ context.Context, item knowledge.Item) (knowledge.Item, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	item.ID = repo.db.pk
	repo.db.items = append(repo.db.items, item)
	return item, nil
}

func (repo *knowledgeRepository) QueryAllItems(_ context.Context) ([]knowledge.Item, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := append([]knowledge.Item(nil), repo.db.items...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Title < items[j].Title
	})
	return items, nil
}

func (repo *knowledgeRepository) CreateTemplate(_ context.Context, tpl knowledge.Template) (knowledge.Template, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	tpl.ID = repo.db.pk
	repo.db.templates = append(repo.db.templates, tpl)
	return tpl, nil
}

func (repo *knowledgeRepository) QueryAllTemplates(_ context.Context) ([]knowledge.Template, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	return append([]knowledge.Template(nil), repo.db.templates...), nil
}
