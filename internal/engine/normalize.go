package engine

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalize joins title and description with a single space and folds the
// result to lowercase. A Caser is not safe for concurrent use, so one is
// built per call.
func normalize(title, description string) string {
	return cases.Lower(language.Und).String(title + " " + description)
}
