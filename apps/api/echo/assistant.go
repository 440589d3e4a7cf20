package echoapi

import (
	"net/http"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/assistant"
	"github.com/trezcool/darasa/core/student"
)

const defaultRecentLimit = 10

const unknownStudentCodeText = "unknown student code"

type assistantApi struct {
	svc        *assistant.Service
	studentSvc *student.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerAssistantAPI(g *echo.Group, opts *Options) {
	api := assistantApi{
		svc:        opts.AssistantSvc,
		studentSvc: opts.StudentSvc,
		validate:   opts.Validate,
		translator: opts.Translator,
	}

	ag := g.Group("/assistant")
	ag.POST("/query", api.query)
	ag.GET("/queries", api.recentQueries)
	ag.POST("/refresh", api.refresh)
}

// Handlers

func (api *assistantApi) query(ctx echo.Context) error {
	var data QueryRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to QueryRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	requester, err := api.resolveStudent(ctx, data.StudentCode)
	if err != nil {
		return err
	}

	res, err := api.svc.Ask(ctx.Request().Context(), data.Query, requester)
	if err != nil {
		return errors.Wrap(err, "generating response")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *assistantApi) recentQueries(ctx echo.Context) error {
	code := core.CleanString(ctx.QueryParam("student_code"))
	if code == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "student_code", Error: "this field is required"})
	}
	requester, err := api.resolveStudent(ctx, code)
	if err != nil {
		return err
	}

	limit := defaultRecentLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	qrys, err := api.svc.Recent(ctx.Request().Context(), *requester, limit)
	if err != nil {
		return errors.Wrap(err, "querying recent queries")
	}
	return ctx.JSON(http.StatusOK, qrys)
}

// refresh atomically swaps in the latest knowledge corpus and templates.
func (api *assistantApi) refresh(ctx echo.Context) error {
	if err := api.svc.Engine().Refresh(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "refreshing corpus")
	}
	return ctx.JSON(http.StatusOK, RefreshResponse{Refreshed: true})
}

// resolveStudent looks up the optional requester identity.
// The API does no authentication; callers supply the identity.
func (api *assistantApi) resolveStudent(ctx echo.Context, code string) (*student.Student, error) {
	if code == "" {
		return nil, nil
	}
	std, err := api.studentSvc.GetByCode(ctx.Request().Context(), code)
	if err != nil {
		if errors.Cause(err) == student.ErrNotFound {
			return nil, core.NewValidationError(nil, core.FieldError{Field: "student_code", Error: unknownStudentCodeText})
		}
		return nil, errors.Wrap(err, "resolving student")
	}
	return &std, nil
}
