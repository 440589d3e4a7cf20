package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
)

// Logger is a no-op core.Logger for tests.
type Logger struct{}

func (Logger) Enable(bool)                  {}
func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
func (Logger) Fatal(string, ...interface{}) {}

func CreateStudent(t *testing.T, repo student.Repository, code, name string) student.Student {
	t.Helper()
	std, err := repo.CreateStudent(context.Background(), student.Student{
		StudentCode: code,
		Name:        name,
		Email:       code + "@test.test",
		Status:      student.StatusActive,
		EnrolledAt:  time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return std
}

func CreateCourse(t *testing.T, repo course.Repository, code, name string) course.Course {
	t.Helper()
	now := time.Now().UTC()
	crs, err := repo.CreateCourse(context.Background(), course.Course{
		Code:      code,
		Name:      name,
		StartDate: now,
		EndDate:   now.AddDate(0, 3, 0),
	})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateAssignment(t *testing.T, repo course.Repository, courseID int, title string, due time.Time) course.Assignment {
	t.Helper()
	asg, err := repo.CreateAssignment(context.Background(), course.Assignment{
		CourseID: courseID,
		Title:    title,
		MaxMarks: 100,
		DueDate:  due,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateQuiz(t *testing.T, repo course.Repository, courseID int, title string, date time.Time) course.Quiz {
	t.Helper()
	qz, err := repo.CreateQuiz(context.Background(), course.Quiz{
		CourseID:        courseID,
		Title:           title,
		MaxMarks:        50,
		DurationMinutes: 60,
		Date:            date,
	})
	if err != nil {
		t.Fatalf("CreateQuiz() failed: %v", err)
	}
	return qz
}

func CreateGrade(t *testing.T, repo course.Repository, studentID, courseID int, assessment string, marks float64, max int) course.Grade {
	t.Helper()
	grd, err := repo.CreateGrade(context.Background(), course.Grade{
		StudentID:      studentID,
		CourseID:       courseID,
		AssessmentType: assessment,
		MarksObtained:  marks,
		MaxMarks:       max,
		Percentage:     marks / float64(max) * 100,
		SubmittedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return grd
}

func CreateKnowledgeItem(t *testing.T, repo knowledge.Repository, category, title, content string) knowledge.Item {
	t.Helper()
	item, err := repo.CreateItem(context.Background(), knowledge.Item{
		Category: category,
		Title:    title,
		Content:  content,
	})
	if err != nil {
		t.Fatalf("CreateKnowledgeItem() failed: %v", err)
	}
	return item
}
