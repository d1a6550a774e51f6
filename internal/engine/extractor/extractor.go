// Package extractor pulls candidate person names and date references out of
// normalized task text with fixed patterns.
package extractor

import (
	"regexp"
	"strings"
)

var (
	// The captured phrase runs greedily over letters and whitespace, so one
	// match can swallow later cue words ("with john by friday").
	peoplePattern = regexp.MustCompile(`(?i)(with|by|assign to|for)\s+([a-zA-Z\s]+)`)
	datePattern   = regexp.MustCompile(`(?i)\b(today|tomorrow|this week|\d{1,2}/\d{1,2}|\d{1,2}-\d{1,2})`)
)

// People returns the first token of every phrase that follows a person cue,
// in match order. Only one token is kept per match, so "with Mary Jane"
// yields "mary". Duplicates are preserved.
func People(text string) []string {
	matches := peoplePattern.FindAllStringSubmatch(text, -1)
	people := make([]string, 0, len(matches))
	for _, m := range matches {
		fields := strings.Fields(m[2])
		if len(fields) == 0 {
			continue
		}
		people = append(people, fields[0])
	}
	return people
}

// Dates returns every date reference in text as it appears, left to right,
// duplicates preserved.
func Dates(text string) []string {
	dates := datePattern.FindAllString(text, -1)
	if dates == nil {
		return []string{}
	}
	return dates
}
