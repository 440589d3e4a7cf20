package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/knowledge"
	"github.com/trezcool/darasa/core/student"
)

const (
	dateFormat = "02 January 2006, 03:04 PM"

	maxDeadlineItems = 5
	maxRecentGrades  = 10
)

type (
	// corpusSnapshot is the read-only view of the knowledge store an engine
	// call operates on. Refresh swaps it atomically: readers see either the
	// fully-old or the fully-new corpus, never a partial one.
	corpusSnapshot struct {
		items     []knowledge.Item
		templates map[Intent]string
	}

	// Engine answers free-text questions: intent detection, entity
	// extraction, handler dispatch and knowledge-base fallback.
	// It is safe for concurrent use; calls share no mutable state.
	Engine struct {
		courses   *course.Service
		knowledge *knowledge.Service
		retriever *Retriever
		logger    core.Logger

		supportEmail string
		corpus       atomic.Value // corpusSnapshot
	}
)

func NewEngine(courses *course.Service, knowledgeSvc *knowledge.Service, logger core.Logger, supportEmail string) *Engine {
	eng := &Engine{
		courses:      courses,
		knowledge:    knowledgeSvc,
		retriever:    NewRetriever(),
		logger:       logger,
		supportEmail: supportEmail,
	}
	eng.corpus.Store(corpusSnapshot{templates: make(map[Intent]string)})
	if err := eng.Refresh(context.Background()); err != nil {
		// an engine with an empty corpus still answers; the fallback path
		// degrades to default responses
		logger.Warn("assistant: loading corpus", err)
	}
	return eng
}

// Refresh reloads the knowledge corpus and response templates and swaps
// them in atomically.
func (eng *Engine) Refresh(ctx context.Context) error {
	items, err := eng.knowledge.QueryAllItems(ctx)
	if err != nil {
		return errors.Wrap(err, "querying knowledge items")
	}
	tpls, err := eng.knowledge.QueryAllTemplates(ctx)
	if err != nil {
		return errors.Wrap(err, "querying response templates")
	}

	templates := make(map[Intent]string, len(tpls))
	for _, tpl := range tpls {
		if IsValidIntent(tpl.Intent) {
			templates[Intent(tpl.Intent)] = tpl.Template
		}
	}
	eng.corpus.Store(corpusSnapshot{items: items, templates: templates})
	return nil
}

func (eng *Engine) snapshot() corpusSnapshot {
	return eng.corpus.Load().(corpusSnapshot)
}

// Templates returns the currently loaded canned texts per intent.
// They are configuration data; retrieval does not consult them.
func (eng *Engine) Templates() map[Intent]string {
	snap := eng.snapshot()
	tpls := make(map[Intent]string, len(snap.templates))
	for intent, tpl := range snap.templates {
		tpls[intent] = tpl
	}
	return tpls
}

// GenerateResponse classifies the text, extracts entities and dispatches to
// the matching handler; intents without a dedicated handler fall back to
// knowledge retrieval. Every path terminates in a valid QueryResult.
func (eng *Engine) GenerateResponse(ctx context.Context, text string, requester *student.Student) (res QueryResult) {
	intent := DetectIntent(text)
	entities := ExtractEntities(text)

	// handlers catch their own provider faults; this is the last-resort
	// barrier so a panic can never escape as a raw fault
	defer func() {
		if r := recover(); r != nil {
			eng.logger.Error("assistant: recovered panic", fmt.Errorf("%v", r))
			res = QueryResult{
				Intent:     intent,
				Response:   "Something went wrong while answering your question. Please try again.",
				Confidence: 0.3,
			}
		}
		res.Confidence = clampConfidence(res.Confidence)
	}()

	switch intent {
	case IntentAssignmentDeadline:
		return eng.handleAssignmentDeadline(ctx, entities)
	case IntentGradeInquiry:
		return eng.handleGradeInquiry(ctx, entities, requester)
	case IntentCourseContent:
		return eng.handleCourseContent()
	case IntentTechnicalIssue:
		return eng.handleTechnicalIssue()
	case IntentExamSchedule:
		return eng.handleExamSchedule(ctx, entities)
	default:
		return eng.handleGeneral(text, intent)
	}
}

func (eng *Engine) handleAssignmentDeadline(ctx context.Context, entities ExtractedEntities) QueryResult {
	if !entities.HasCourseCode() {
		return QueryResult{
			Intent:     IntentAssignmentDeadline,
			Response:   "Please specify which course you need assignment information for (e.g., COMP101).",
			Confidence: 0.5,
		}
	}

	crs, err := eng.courses.GetByCode(ctx, entities.CourseCode)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return QueryResult{
				Intent:     IntentAssignmentDeadline,
				Response:   fmt.Sprintf("I couldn't find the course %s. Please check the course code.", entities.CourseCode),
				Confidence: 0.6,
			}
		}
		return eng.failure(IntentAssignmentDeadline, "assignment information", err)
	}

	assignments, err := eng.courses.QueryAssignments(ctx, crs.ID)
	if err != nil {
		return eng.failure(IntentAssignmentDeadline, "assignment information", err)
	}
	if len(assignments) == 0 {
		return QueryResult{
			Intent:     IntentAssignmentDeadline,
			Response:   fmt.Sprintf("There are no assignments listed for %s yet.", crs.Code),
			Confidence: 0.8,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the assignments for %s:\n\n", crs.Code)
	for i, asg := range assignments {
		if i == maxDeadlineItems {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, asg.Title)
		fmt.Fprintf(&b, "   Due: %s\n", asg.DueDate.Format(dateFormat))
		fmt.Fprintf(&b, "   Max Marks: %d\n\n", asg.MaxMarks)
	}

	data := make([]AssignmentDue, 0, len(assignments))
	for _, asg := range assignments {
		data = append(data, AssignmentDue{Title: asg.Title, DueDate: asg.DueDate})
	}
	return QueryResult{
		Intent:     IntentAssignmentDeadline,
		Response:   b.String(),
		Confidence: 0.9,
		Data:       data,
	}
}

func (eng *Engine) handleGradeInquiry(ctx context.Context, entities ExtractedEntities, requester *student.Student) QueryResult {
	if requester == nil {
		return QueryResult{
			Intent:     IntentGradeInquiry,
			Response:   "Please log in to view your grades.",
			Confidence: 0.5,
		}
	}
	if !requester.IsActive() {
		return QueryResult{
			Intent:     IntentGradeInquiry,
			Response:   "Your student account is not active. Please contact the Registrar's Office at " + eng.supportEmail,
			Confidence: 0.5,
		}
	}

	var (
		grades []course.Grade
		b      strings.Builder
	)
	if entities.HasCourseCode() {
		crs, err := eng.courses.GetByCode(ctx, entities.CourseCode)
		if err != nil {
			if errors.Cause(err) == course.ErrNotFound {
				return QueryResult{
					Intent:     IntentGradeInquiry,
					Response:   fmt.Sprintf("Course %s not found.", entities.CourseCode),
					Confidence: 0.6,
				}
			}
			return eng.failure(IntentGradeInquiry, "your grades", err)
		}
		if grades, err = eng.courses.QueryGrades(ctx, requester.ID, crs.ID); err != nil {
			return eng.failure(IntentGradeInquiry, "your grades", err)
		}
		fmt.Fprintf(&b, "Your grades for %s:\n\n", crs.Code)
	} else {
		var err error
		if grades, err = eng.courses.QueryStudentGrades(ctx, requester.ID, maxRecentGrades); err != nil {
			return eng.failure(IntentGradeInquiry, "your grades", err)
		}
		b.WriteString("Your recent grades:\n\n")
	}

	if len(grades) == 0 {
		return QueryResult{
			Intent:     IntentGradeInquiry,
			Response:   "No grades available yet.",
			Confidence: 0.8,
		}
	}

	for _, grd := range grades {
		fmt.Fprintf(&b, "• %s - %s\n", grd.CourseCode, grd.AssessmentType)
		fmt.Fprintf(&b, "  Score: %g/%d (%g%%)\n\n", grd.MarksObtained, grd.MaxMarks, grd.Percentage)
	}
	return QueryResult{
		Intent:     IntentGradeInquiry,
		Response:   b.String(),
		Confidence: 0.9,
	}
}

func (eng *Engine) handleCourseContent() QueryResult {
	var b strings.Builder
	b.WriteString("Course materials are available in your course dashboard. ")
	b.WriteString("Go to your enrolled courses and click on the course to access:\n\n")
	b.WriteString("• Lecture slides and notes\n")
	b.WriteString("• Reading materials\n")
	b.WriteString("• Video lectures\n")
	b.WriteString("• Tutorial exercises\n\n")
	b.WriteString("If you need specific materials, please mention the course code and week number.")
	return QueryResult{
		Intent:     IntentCourseContent,
		Response:   b.String(),
		Confidence: 0.7,
	}
}

func (eng *Engine) handleTechnicalIssue() QueryResult {
	var b strings.Builder
	b.WriteString("For technical issues, please try the following:\n\n")
	b.WriteString("1. Clear your browser cache and cookies\n")
	b.WriteString("2. Try using a different browser (Chrome, Firefox, Edge)\n")
	b.WriteString("3. Ensure you're using the correct login credentials\n")
	b.WriteString("4. Check your internet connection\n\n")
	b.WriteString("If the problem persists, contact IT Support:\n")
	fmt.Fprintf(&b, "Email: %s", eng.supportEmail)
	return QueryResult{
		Intent:     IntentTechnicalIssue,
		Response:   b.String(),
		Confidence: 0.9,
	}
}

func (eng *Engine) handleExamSchedule(ctx context.Context, entities ExtractedEntities) QueryResult {
	if !entities.HasCourseCode() {
		return QueryResult{
			Intent:     IntentExamSchedule,
			Response:   "Please specify which course you need exam information for.",
			Confidence: 0.5,
		}
	}

	crs, err := eng.courses.GetByCode(ctx, entities.CourseCode)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return QueryResult{
				Intent:     IntentExamSchedule,
				Response:   fmt.Sprintf("Course %s not found.", entities.CourseCode),
				Confidence: 0.6,
			}
		}
		return eng.failure(IntentExamSchedule, "the exam schedule", err)
	}

	quizzes, err := eng.courses.QueryQuizzes(ctx, crs.ID)
	if err != nil {
		return eng.failure(IntentExamSchedule, "the exam schedule", err)
	}
	if len(quizzes) == 0 {
		return QueryResult{
			Intent:     IntentExamSchedule,
			Response:   fmt.Sprintf("No exams/quizzes scheduled for %s yet.", crs.Code),
			Confidence: 0.8,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Exam schedule for %s:\n\n", crs.Code)
	for _, qz := range quizzes {
		fmt.Fprintf(&b, "• %s\n", qz.Title)
		fmt.Fprintf(&b, "  Date: %s\n", qz.Date.Format(dateFormat))
		fmt.Fprintf(&b, "  Duration: %d minutes\n\n", qz.DurationMinutes)
	}
	return QueryResult{
		Intent:     IntentExamSchedule,
		Response:   b.String(),
		Confidence: 0.9,
	}
}

// handleGeneral is the fallback path for intents without a dedicated
// handler: lexical search over the knowledge corpus, then per-intent
// default responses.
func (eng *Engine) handleGeneral(text string, intent Intent) QueryResult {
	snap := eng.snapshot()
	if match, ok := eng.retriever.Search(text, snap.items); ok {
		return QueryResult{
			Intent:     intent,
			Response:   match.Item.Title + "\n\n" + match.Item.Content,
			Confidence: match.Score,
		}
	}
	return QueryResult{
		Intent:     intent,
		Response:   eng.defaultResponse(intent),
		Confidence: 0.5,
	}
}

func (eng *Engine) defaultResponse(intent Intent) string {
	switch intent {
	case IntentGeneralInquiry:
		return "I'm here to help! You can ask me about:\n" +
			"• Assignment deadlines\n• Your grades\n• Course materials\n" +
			"• Exam schedules\n• Technical issues\n\nWhat would you like to know?"
	case IntentEnrollmentHelp:
		return "For enrollment assistance, please visit the Student Portal or contact the Registrar's Office at " + eng.supportEmail
	case IntentFeePayment:
		return "For fee payment information, please contact the Finance Office at " + eng.supportEmail
	default:
		return "I'm not sure how to help with that. Please contact student support at " + eng.supportEmail
	}
}

// failure converts a provider-layer fault into a low-confidence textual
// response; raw errors never reach the caller.
func (eng *Engine) failure(intent Intent, what string, err error) QueryResult {
	eng.logger.Error(fmt.Sprintf("assistant: retrieving %s", what), err)
	return QueryResult{
		Intent:     intent,
		Response:   fmt.Sprintf("I encountered an error retrieving %s. Please try again later.", what),
		Confidence: 0.3,
	}
}

func clampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
