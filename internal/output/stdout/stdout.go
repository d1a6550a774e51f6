package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/hejijunhao/triage/internal/model"
)

// Format selects how records are rendered.
type Format int

const (
	JSON Format = iota // one JSON object per line
	Text               // human-readable summary block
)

// ParseFormat maps "text" to Text and anything else to JSON.
func ParseFormat(s string) Format {
	if strings.EqualFold(s, "text") {
		return Text
	}
	return JSON
}

var (
	categoryColor = color.New(color.FgCyan, color.Bold)
	dimColor      = color.New(color.Faint)
	priorityColor = map[model.Priority]*color.Color{
		model.High:   color.New(color.FgRed, color.Bold),
		model.Medium: color.New(color.FgYellow),
		model.Low:    color.New(color.FgGreen),
	}
)

// Output writes records to a writer, usually os.Stdout.
type Output struct {
	mu     sync.Mutex
	w      io.Writer
	enc    *json.Encoder
	format Format
}

// New creates an Output. pretty indents JSON and is ignored for Text.
func New(w io.Writer, format Format, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{w: w, enc: enc, format: format}
}

func (o *Output) Write(_ context.Context, rec model.Record) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.format == Text {
		if _, err := io.WriteString(o.w, RenderText(rec)); err != nil {
			return fmt.Errorf("stdout output: %w", err)
		}
		return nil
	}
	if err := o.enc.Encode(rec); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}

// RenderText formats a record as a short block for terminals. Colour is
// applied only when fatih/color detects a terminal.
func RenderText(rec model.Record) string {
	var b strings.Builder
	task := rec.Task

	fmt.Fprintf(&b, "%s  %s  %s\n",
		categoryColor.Sprint(task.Category),
		colorFor(task.Priority).Sprint(task.Priority),
		task.Title)
	if rec.FinalUsed.Category != rec.AutoClassification.Category || rec.FinalUsed.Priority != rec.AutoClassification.Priority {
		fmt.Fprintf(&b, "  %s\n", dimColor.Sprintf("auto: %s/%s", rec.AutoClassification.Category, rec.AutoClassification.Priority))
	}
	if people := task.ExtractedEntities.People; len(people) > 0 {
		fmt.Fprintf(&b, "  people: %s\n", strings.Join(people, ", "))
	}
	if dates := task.ExtractedEntities.Dates; len(dates) > 0 {
		fmt.Fprintf(&b, "  dates:  %s\n", strings.Join(dates, ", "))
	}
	for _, a := range task.SuggestedActions {
		fmt.Fprintf(&b, "  - %s\n", a)
	}
	fmt.Fprintf(&b, "  %s\n", dimColor.Sprint(task.ID))
	return b.String()
}

func colorFor(p model.Priority) *color.Color {
	if c, ok := priorityColor[p]; ok {
		return c
	}
	return dimColor
}
