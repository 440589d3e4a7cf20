package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

type (
	QueryRequest struct {
		Query       string `json:"query" validate:"required,max=2000"`
		StudentCode string `json:"student_code" validate:"omitempty,max=20"`
	}

	RefreshResponse struct {
		Refreshed bool `json:"refreshed"`
	}
)

func (r *QueryRequest) Validate(validate *validator.Validate) error {
	r.Query = core.CleanString(r.Query)
	r.StudentCode = core.CleanString(r.StudentCode)
	return validate.Struct(r)
}
