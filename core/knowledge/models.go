package knowledge

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

// Item is a read-only knowledge base article. The searchable document is
// the concatenation of Title and Content.
type Item struct {
	ID       int      `db:"id" json:"id"`
	Category string   `db:"category" json:"category"`
	Title    string   `db:"title" json:"title"`
	Content  string   `db:"content" json:"content"`
	Keywords []string `db:"-" json:"keywords"`
}

func (it Item) Document() string {
	return it.Title + " " + it.Content
}

// Template is canned response text associated with an intent.
// Kept as configuration data; retrieval does not consult it.
type Template struct {
	ID         int      `db:"id" json:"id"`
	Intent     string   `db:"intent" json:"intent"`
	Template   string   `db:"template" json:"template"`
	Variations []string `db:"-" json:"variations"`
}

// NewItem contains information needed to import a new knowledge base Item.
type NewItem struct {
	Category string   `json:"category" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Keywords []string `json:"keywords"`
}

func (ni *NewItem) Validate(validate *validator.Validate) error {
	ni.Category = core.CleanString(ni.Category)
	ni.Title = core.CleanString(ni.Title)
	ni.Content = core.CleanString(ni.Content)
	return validate.Struct(ni)
}
