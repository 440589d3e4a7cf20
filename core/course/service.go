package course

import (
	"context"
	"errors"

	"github.com/trezcool/darasa/core"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// GetCourseByCode returns ErrNotFound when the code resolves to no course.
		GetCourseByCode(ctx context.Context, code string) (Course, error)

		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// QueryAssignments returns the course's assignments ordered by due date.
		QueryAssignments(ctx context.Context, courseID int) ([]Assignment, error)

		CreateQuiz(ctx context.Context, qz Quiz) (Quiz, error)
		// QueryQuizzes returns the course's quizzes ordered by date.
		QueryQuizzes(ctx context.Context, courseID int) ([]Quiz, error)

		CreateGrade(ctx context.Context, grd Grade) (Grade, error)
		// QueryGrades returns a student's grades for a course, most recent first.
		QueryGrades(ctx context.Context, studentID, courseID int) ([]Grade, error)
		// QueryStudentGrades returns up to limit of a student's grades across
		// all courses, most recent first.
		QueryStudentGrades(ctx context.Context, studentID, limit int) ([]Grade, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, crs Course) (Course, error) {
	crs.Code = core.CleanString(crs.Code)
	crs.Name = core.CleanString(crs.Name)
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) GetByCode(ctx context.Context, code string) (Course, error) {
	return svc.repo.GetCourseByCode(ctx, core.CleanString(code))
}

func (svc *Service) CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error) {
	asg.Title = core.CleanString(asg.Title)
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) QueryAssignments(ctx context.Context, courseID int) ([]Assignment, error) {
	return svc.repo.QueryAssignments(ctx, courseID)
}

func (svc *Service) CreateQuiz(ctx context.Context, qz Quiz) (Quiz, error) {
	qz.Title = core.CleanString(qz.Title)
	return svc.repo.CreateQuiz(ctx, qz)
}

func (svc *Service) QueryQuizzes(ctx context.Context, courseID int) ([]Quiz, error) {
	return svc.repo.QueryQuizzes(ctx, courseID)
}

func (svc *Service) CreateGrade(ctx context.Context, grd Grade) (Grade, error) {
	return svc.repo.CreateGrade(ctx, grd)
}

func (svc *Service) QueryGrades(ctx context.Context, studentID, courseID int) ([]Grade, error) {
	return svc.repo.QueryGrades(ctx, studentID, courseID)
}

func (svc *Service) QueryStudentGrades(ctx context.Context, studentID, limit int) ([]Grade, error) {
	return svc.repo.QueryStudentGrades(ctx, studentID, limit)
}
