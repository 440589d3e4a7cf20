package course

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type Course struct {
	ID         int       `db:"id" json:"id"`
	Code       string    `db:"code" json:"code"`
	Name       string    `db:"name" json:"name"`
	Instructor string    `db:"instructor" json:"instructor"`
	Term       string    `db:"term" json:"term"`
	Credits    int       `db:"credits" json:"credits"`
	Department string    `db:"department" json:"department"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

type Assignment struct {
	ID       int       `db:"id" json:"id"`
	CourseID int       `db:"course_id" json:"course_id"`
	Title    string    `db:"title" json:"title"`
	Type     string    `db:"type" json:"type"`
	MaxMarks int       `db:"max_marks" json:"max_marks"`
	Weight   int       `db:"weight" json:"weight"`
	DueDate  time.Time `db:"due_date" json:"due_date"` // UTC
}

type Quiz struct {
	ID              int       `db:"id" json:"id"`
	CourseID        int       `db:"course_id" json:"course_id"`
	Title           string    `db:"title" json:"title"`
	Type            string    `db:"type" json:"type"`
	MaxMarks        int       `db:"max_marks" json:"max_marks"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Date            time.Time `db:"date" json:"date"` // UTC
}

type Grade struct {
	ID             int         `db:"id" json:"id"`
	StudentID      int         `db:"student_id" json:"student_id"`
	CourseID       int         `db:"course_id" json:"course_id"`
	CourseCode     string      `db:"course_code" json:"course_code"`
	AssessmentType string      `db:"assessment_type" json:"assessment_type"`
	MarksObtained  float64     `db:"marks_obtained" json:"marks_obtained"`
	MaxMarks       int         `db:"max_marks" json:"max_marks"`
	Percentage     float64     `db:"percentage" json:"percentage"`
	SubmittedAt    time.Time   `db:"submitted_at" json:"submitted_at"` // UTC
	Feedback       null.String `db:"feedback" json:"feedback"`
}
