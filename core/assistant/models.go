package assistant

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
)

// Query statuses.
const (
	StatusResolved = "Resolved"
	StatusPending  = "Pending"
)

// Query priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// ResolvedConfidence is the confidence floor above which a logged query is
// considered answered; anything lower stays Pending for support follow-up.
const ResolvedConfidence = 0.7

// AssignmentDue is the structured record attached to deadline answers for
// programmatic consumers.
type AssignmentDue struct {
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

// QueryResult is the ephemeral output of one orchestration call.
// Confidence is always within [0,1] and Intent is always a catalog member.
type QueryResult struct {
	Intent     Intent          `json:"intent"`
	Response   string          `json:"response"`
	Confidence float64         `json:"confidence"`
	Data       []AssignmentDue `json:"data,omitempty"`
}

// Query is the durable record of one answered question.
type Query struct {
	ID        int       `db:"id" json:"id"`
	Ref       string    `db:"ref" json:"ref"`
	StudentID null.Int  `db:"student_id" json:"student_id"`
	Text      string    `db:"text" json:"text"`
	Intent    string    `db:"intent" json:"intent"`
	Response  string    `db:"response" json:"response"`
	Status    string    `db:"status" json:"status"`
	Priority  string    `db:"priority" json:"priority"`
	CreatedAt time.Time `db:"created_at" json:"created_at"` // UTC
}

type QueryRepository interface {
	CreateQuery(ctx context.Context, qry Query) (Query, error)
	// QueryRecentByStudent returns up to limit of the student's queries,
	// most recent first.
	QueryRecentByStudent(ctx context.Context, studentID, limit int) ([]Query, error)
}
