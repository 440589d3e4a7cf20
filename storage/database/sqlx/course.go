package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO course (code, name, instructor, term, credits, department, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		crs.Code, crs.Name, crs.Instructor, crs.Term, crs.Credits, crs.Department, crs.StartDate, crs.EndDate,
	).Scan(&crs.ID)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo *courseRepository) GetCourseByCode(ctx context.Context, code string) (course.Course, error) {
	var crs course.Course
	err := repo.db.GetContext(ctx, &crs, `SELECT * FROM course WHERE code = $1`, code)
	if err == sql.ErrNoRows {
		return course.Course{}, course.ErrNotFound
	}
	return crs, errors.Wrap(err, "getting course by code")
}

func (repo *courseRepository) CreateAssignment(ctx context.Context, asg course.Assignment) (course.Assignment, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO assignment (course_id, title, type, max_marks, weight, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		asg.CourseID, asg.Title, asg.Type, asg.MaxMarks, asg.Weight, asg.DueDate,
	).Scan(&asg.ID)
	if err != nil {
		return course.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return asg, nil
}

func (repo *courseRepository) QueryAssignments(ctx context.Context, courseID int) ([]course.Assignment, error) {
	asgs := make([]course.Assignment, 0)
	err := repo.db.SelectContext(ctx, &asgs, `
		SELECT * FROM assignment WHERE course_id = $1 ORDER BY due_date`, courseID)
	return asgs, errors.Wrap(err, "querying assignments")
}

func (repo *courseRepository) CreateQuiz(ctx context.Context, qz course.Quiz) (course.Quiz, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO quiz (course_id, title, type, max_marks, duration_minutes, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		qz.CourseID, qz.Title, qz.Type, qz.MaxMarks, qz.DurationMinutes, qz.Date,
	).Scan(&qz.ID)
	if err != nil {
		return course.Quiz{}, errors.Wrap(err, "inserting quiz")
	}
	return qz, nil
}

func (repo *courseRepository) QueryQuizzes(ctx context.Context, courseID int) ([]course.Quiz, error) {
	qzs := make([]course.Quiz, 0)
	err := repo.db.SelectContext(ctx, &qzs, `
		SELECT * FROM quiz WHERE course_id = $1 ORDER BY date`, courseID)
	return qzs, errors.Wrap(err, "querying quizzes")
}

func (repo *courseRepository) CreateGrade(ctx context.Context, grd course.Grade) (course.Grade, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO grade (student_id, course_id, assessment_type, marks_obtained, max_marks, percentage, submitted_at, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		grd.StudentID, grd.CourseID, grd.AssessmentType, grd.MarksObtained, grd.MaxMarks, grd.Percentage, grd.SubmittedAt, grd.Feedback,
	).Scan(&grd.ID)
	if err != nil {
		return course.Grade{}, errors.Wrap(err, "inserting grade")
	}
	return grd, nil
}

const gradeColumns = `
	g.id, g.student_id, g.course_id, c.code AS course_code, g.assessment_type,
	g.marks_obtained, g.max_marks, g.percentage, g.submitted_at, g.feedback`

func (repo *courseRepository) QueryGrades(ctx context.Context, studentID, courseID int) ([]course.Grade, error) {
	grds := make([]course.Grade, 0)
	err := repo.db.SelectContext(ctx, &grds, `
		SELECT `+gradeColumns+`
		FROM grade g JOIN course c ON c.id = g.course_id
		WHERE g.student_id = $1 AND g.course_id = $2
		ORDER BY g.submitted_at DESC`, studentID, courseID)
	return grds, errors.Wrap(err, "querying grades")
}

func (repo *courseRepository) QueryStudentGrades(ctx context.Context, studentID, limit int) ([]course.Grade, error) {
	grds := make([]course.Grade, 0)
	err := repo.db.SelectContext(ctx, &grds, `
		SELECT `+gradeColumns+`
		FROM grade g JOIN course c ON c.id = g.course_id
		WHERE g.student_id = $1
		ORDER BY g.submitted_at DESC
		LIMIT $2`, studentID, limit)
	return grds, errors.Wrap(err, "querying student grades")
}
