package assistant

import "strings"

// Intent is the classified purpose of a free-text question, drawn from a
// fixed catalog.
type Intent string

const (
	IntentAssignmentDeadline Intent = "assignment_deadline"
	IntentGradeInquiry       Intent = "grade_inquiry"
	IntentCourseContent      Intent = "course_content"
	IntentEnrollmentHelp     Intent = "enrollment_help"
	IntentTechnicalIssue     Intent = "technical_issue"
	IntentExamSchedule       Intent = "exam_schedule"
	IntentFeePayment         Intent = "fee_payment"
	IntentResourceAccess     Intent = "resource_access"
	IntentExtensionRequest   Intent = "extension_request"
	IntentGeneralInquiry     Intent = "general_inquiry"
)

// FallbackIntent is returned when no catalog keyword matches at all.
const FallbackIntent = IntentGeneralInquiry

type intentEntry struct {
	intent   Intent
	keywords []string
}

// intentCatalog maps every intent to its keyword list. The slice order is
// the tie-break rule: when several intents share the maximum score, the one
// declared first wins. Keywords are matched as lowercase substrings, so
// "deadline" also hits "deadlines" and "add course" is a single phrase check.
var intentCatalog = []intentEntry{
	{IntentAssignmentDeadline, []string{"assignment", "due", "deadline", "submit", "submission"}},
	{IntentGradeInquiry, []string{"grade", "mark", "score", "result", "performance"}},
	{IntentCourseContent, []string{"lecture", "material", "resource", "slide", "content", "topic"}},
	{IntentEnrollmentHelp, []string{"enroll", "registration", "add course", "drop course"}},
	{IntentTechnicalIssue, []string{"login", "log in", "access", "error", "problem", "issue", "broken"}},
	{IntentExamSchedule, []string{"exam", "test", "final", "midterm", "schedule"}},
	{IntentFeePayment, []string{"fee", "payment", "tuition", "cost", "pay"}},
	{IntentResourceAccess, []string{"download", "access", "library", "book", "reference"}},
	{IntentExtensionRequest, []string{"extension", "late", "postpone", "delay"}},
	{IntentGeneralInquiry, []string{"help", "question", "how", "what", "when", "where"}},
}

// Intents returns the closed intent catalog in declaration order.
func Intents() []Intent {
	intents := make([]Intent, 0, len(intentCatalog))
	for _, entry := range intentCatalog {
		intents = append(intents, entry.intent)
	}
	return intents
}

// IsValidIntent reports whether s is a member of the catalog.
func IsValidIntent(s string) bool {
	for _, entry := range intentCatalog {
		if entry.intent == Intent(s) {
			return true
		}
	}
	return false
}

// DetectIntent scores every catalog intent by the number of its keywords
// contained in the lowercased text and returns the strict maximum.
// A zero maximum yields FallbackIntent; ties resolve in catalog order.
func DetectIntent(text string) Intent {
	lower := strings.ToLower(text)

	best := FallbackIntent
	bestScore := 0
	for _, entry := range intentCatalog {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = entry.intent
			bestScore = score
		}
	}
	return best
}
