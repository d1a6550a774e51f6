package triage_test

import (
	"fmt"

	"github.com/hejijunhao/triage/pkg/triage"
)

func Example() {
	t := triage.New()

	c := t.Classify("Fix bug with John by tomorrow", "")

	fmt.Printf("Category: %s, Priority: %s\n", c.Category, c.Priority)
	fmt.Printf("People: %v, Dates: %v\n", c.Entities.People, c.Entities.Dates)
	fmt.Printf("Next: %s\n", c.SuggestedActions[0])
	// Output:
	// Category: technical, Priority: low
	// People: [john], Dates: [tomorrow]
	// Next: Diagnose issue
}

func ExampleTriage_Prepare() {
	t := triage.New()

	p, err := t.Prepare(triage.Request{Title: "Pay invoice", Priority: "high"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Task.Status, p.FinalUsed.Category, p.FinalUsed.Priority)
	fmt.Println("auto priority:", p.AutoClassification.Priority)

	_, err = t.Prepare(triage.Request{Title: "   "})
	fmt.Println(err)
	// Output:
	// pending finance high
	// auto priority: low
	// triage: title is required
}
