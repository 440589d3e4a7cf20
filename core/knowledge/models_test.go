package knowledge

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
)

func TestNewItemValidate(t *testing.T) {
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator(enLocale.Locale())
	core.InitValidators(validate, translator)

	t.Run("valid item is cleaned", func(t *testing.T) {
		ni := NewItem{Category: " faq ", Title: " Library Hours ", Content: "Open 8am to 10pm."}
		assert.NoError(t, ni.Validate(validate))
		assert.Equal(t, "faq", ni.Category)
		assert.Equal(t, "Library Hours", ni.Title)
	})

	t.Run("blank content rejected", func(t *testing.T) {
		ni := NewItem{Category: "faq", Title: "Library Hours", Content: "   "}
		assert.Error(t, ni.Validate(validate))
	})
}

func TestItemDocument(t *testing.T) {
	it := Item{Title: "Library Hours", Content: "Open 8am to 10pm."}
	assert.Equal(t, "Library Hours Open 8am to 10pm.", it.Document())
}
