package classifier

import (
	"strings"

	"github.com/hejijunhao/triage/internal/engine/taxonomy"
)

// Match is the label chosen by First and the keyword that triggered it.
type Match[L ~string] struct {
	Label   L
	Keyword string
}

// First scans rules in order, and each rule's keywords in order, returning
// the first rule with a keyword that occurs anywhere in text. There is no
// scoring: an earlier rule always beats a later one, wherever in the text
// their keywords appear. text is expected to be normalized already.
func First[L ~string](text string, rules []taxonomy.Rule[L]) (Match[L], bool) {
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(text, kw) {
				return Match[L]{Label: r.Label, Keyword: kw}, true
			}
		}
	}
	return Match[L]{}, false
}
