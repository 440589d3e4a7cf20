package assistant

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/student"
)

// Service answers questions through the Engine and takes care of the
// surrounding bookkeeping: persisting every exchange as a Query record and
// escalating unresolved ones to student support.
type Service struct {
	engine *Engine
	repo   QueryRepository
	mail   core.EmailService
	logger core.Logger

	supportEmail string
	frontendURL  string
}

func NewService(engine *Engine, repo QueryRepository, mailSvc core.EmailService, logger core.Logger, supportEmail, frontendURL string) *Service {
	return &Service{
		engine:       engine,
		repo:         repo,
		mail:         mailSvc,
		logger:       logger,
		supportEmail: supportEmail,
		frontendURL:  strings.TrimSuffix(frontendURL, "/"),
	}
}

func (svc *Service) Engine() *Engine { return svc.engine }

// Ask generates an answer and logs the exchange. Persistence trouble is
// reported but never withholds the answer from the requester.
func (svc *Service) Ask(ctx context.Context, text string, requester *student.Student) (QueryResult, error) {
	res := svc.engine.GenerateResponse(ctx, text, requester)

	qry := Query{
		Ref:       uuid.New().String(),
		Text:      text,
		Intent:    string(res.Intent),
		Response:  res.Response,
		Status:    StatusResolved,
		Priority:  PriorityMedium,
		CreatedAt: time.Now().UTC(),
	}
	if requester != nil {
		qry.StudentID = null.IntFrom(requester.ID)
	}
	if res.Confidence < ResolvedConfidence {
		qry.Status = StatusPending
	}

	qry, err := svc.repo.CreateQuery(ctx, qry)
	if err != nil {
		svc.logger.Warn("assistant: logging query", errors.Wrap(err, "creating query record"))
		return res, nil
	}

	if qry.Status == StatusPending {
		svc.escalate(qry, requester)
	}
	return res, nil
}

// Recent lists the student's latest logged queries.
func (svc *Service) Recent(ctx context.Context, requester student.Student, limit int) ([]Query, error) {
	return svc.repo.QueryRecentByStudent(ctx, requester.ID, limit)
}

func (svc *Service) escalate(qry Query, requester *student.Student) {
	who := "an anonymous visitor"
	if requester != nil {
		who = fmt.Sprintf("%s (%s)", requester.Name, requester.StudentCode)
	}
	body := fmt.Sprintf(
		"The assistant could not confidently answer a question from %s.\n\n"+
			"Ref: %s\nIntent: %s\nQuestion: %s\n\nAnswer given:\n%s\n\n"+
			"Review it at %s/support/queries/%s\n",
		who, qry.Ref, qry.Intent, qry.Text, qry.Response,
		svc.frontendURL, qry.Ref,
	)
	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: svc.supportEmail}},
		Subject: "Unresolved student query " + qry.Ref,
		BodyStr: body,
	})
}
