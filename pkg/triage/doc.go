// Package triage classifies free-text task descriptions into a category and
// priority, pulls out people and date mentions, and suggests next steps.
//
// Quick start:
//
//	t := triage.New()
//
//	c := t.Classify("Urgent meeting with Ana today", "")
//	fmt.Println(c.Category, c.Priority) // scheduling high
//
// Classification is keyword based and deterministic: the same text always
// yields the same result. A Triage is safe for concurrent use.
package triage
