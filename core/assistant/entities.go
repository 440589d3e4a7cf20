package assistant

import (
	"regexp"
	"strconv"
)

var (
	// 3 or 4 uppercase letters immediately followed by exactly 3 digits,
	// as a whole word (e.g. COMP101, WEB201).
	courseCodeRegex = regexp.MustCompile(`\b[A-Z]{3,4}\d{3}\b`)
	// "assignment" followed by optional whitespace and digits.
	assignmentRegex = regexp.MustCompile(`(?i)assignment\s*(\d+)`)
)

// ExtractedEntities holds the structured tokens pulled out of a query.
// Zero values mean the entity was absent from the text.
type ExtractedEntities struct {
	CourseCode        string
	AssignmentOrdinal int
	RawText           string
}

func (e ExtractedEntities) HasCourseCode() bool { return e.CourseCode != "" }

func (e ExtractedEntities) HasAssignmentOrdinal() bool { return e.AssignmentOrdinal > 0 }

// ExtractEntities pulls the first course code and assignment ordinal out of
// the raw text. Later occurrences are ignored.
func ExtractEntities(text string) ExtractedEntities {
	entities := ExtractedEntities{RawText: text}

	if m := courseCodeRegex.FindString(text); m != "" {
		entities.CourseCode = m
	}
	if m := assignmentRegex.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			entities.AssignmentOrdinal = n
		}
	}
	return entities
}
