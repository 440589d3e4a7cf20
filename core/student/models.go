package student

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Statuses a Student can be in.
const (
	StatusActive    = "Active"
	StatusSuspended = "Suspended"
	StatusGraduated = "Graduated"
	StatusWithdrawn = "Withdrawn"
)

type Student struct {
	ID          int          `db:"id" json:"id"`
	StudentCode string       `db:"student_code" json:"student_code"`
	Name        string       `db:"name" json:"name"`
	Email       string       `db:"email" json:"email"`
	Program     string       `db:"program" json:"program"`
	Status      string       `db:"status" json:"status"`
	GPA         null.Float64 `db:"gpa" json:"gpa"`
	EnrolledAt  time.Time    `db:"enrolled_at" json:"enrolled_at"` // UTC
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`   // UTC
}

func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}
