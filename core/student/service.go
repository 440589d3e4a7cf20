package student

import (
	"context"
	"errors"

	"github.com/trezcool/darasa/core"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateStudent(ctx context.Context, std Student) (Student, error)
		// GetStudentByCode returns ErrNotFound when no student carries the code;
		// absence is a regular outcome, not a fault.
		GetStudentByCode(ctx context.Context, code string) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, std Student) (Student, error) {
	std.StudentCode = core.CleanString(std.StudentCode)
	std.Name = core.CleanString(std.Name)
	std.Email = core.CleanString(std.Email, true /* lower */)
	return svc.repo.CreateStudent(ctx, std)
}

func (svc *Service) GetByCode(ctx context.Context, code string) (Student, error) {
	return svc.repo.GetStudentByCode(ctx, core.CleanString(code))
}
