package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/tests"
)

func TestHTTPErrorHandlerShutdown(t *testing.T) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator(enLocale.Locale())

	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		app := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		return app.NewContext(req, rec), rec
	}

	t.Run("shutdown error signals a stop", func(t *testing.T) {
		var signaled bool
		handler := newAppHTTPErrorHandler(testutil.Logger{}, translator, func() { signaled = true })

		ctx, rec := newCtx()
		handler(errors.Wrap(core.NewShutdownError("database gone"), "querying grades"), ctx)
		assert.True(t, signaled)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("ordinary server error does not", func(t *testing.T) {
		var signaled bool
		handler := newAppHTTPErrorHandler(testutil.Logger{}, translator, func() { signaled = true })

		ctx, rec := newCtx()
		handler(errors.New("boom"), ctx)
		assert.False(t, signaled)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
