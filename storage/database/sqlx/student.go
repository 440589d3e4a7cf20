package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO student (student_code, name, email, program, status, gpa, enrolled_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		std.StudentCode, std.Name, std.Email, std.Program, std.Status, std.GPA, std.EnrolledAt, std.CreatedAt,
	).Scan(&std.ID)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return std, nil
}

func (repo *studentRepository) GetStudentByCode(ctx context.Context, code string) (student.Student, error) {
	var std student.Student
	err := repo.db.GetContext(ctx, &std, `SELECT * FROM student WHERE student_code = $1`, code)
	if err == sql.ErrNoRows {
		return student.Student{}, student.ErrNotFound
	}
	return std, errors.Wrap(err, "getting student by code")
}
