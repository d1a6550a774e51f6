package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/output/async"
	"github.com/hejijunhao/triage/internal/output/multi"
	"github.com/hejijunhao/triage/internal/output/stdout"
	"github.com/hejijunhao/triage/internal/output/webhook"
)

func TestBuildOutput(t *testing.T) {
	oc := config.Default().Output

	if out := buildOutput(oc, nil); out != nil {
		t.Errorf("no writer and no webhook: got %T, want nil", out)
	}
	if _, ok := buildOutput(oc, &bytes.Buffer{}).(*stdout.Output); !ok {
		t.Error("writer only: expected *stdout.Output")
	}

	oc.Webhook.URL = "http://127.0.0.1:1/hook"
	if _, ok := buildOutput(oc, nil).(*webhook.Output); !ok {
		t.Error("webhook only: expected *webhook.Output")
	}

	m, ok := buildOutput(oc, &bytes.Buffer{}).(*multi.Multi)
	if !ok || m.Len() != 2 {
		t.Fatalf("writer and webhook: expected a two-way multi, got %T", m)
	}

	oc.Webhook.Async = true
	a, ok := buildOutput(oc, nil).(*async.Async)
	if !ok {
		t.Fatal("async webhook: expected *async.Async")
	}
	a.Close()
}

func TestPrintTaxonomy(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printTaxonomy(&buf, taxonomy.Default())
	out := buf.String()

	for _, want := range []string{
		"Categories",
		"meeting, schedule, call, appointment, deadline",
		"-> Block calendar, Send invite, Prepare agenda, Set reminder",
		"general",
		"Review task",
		"Priorities",
		"soon, this week, important",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("taxonomy output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "scheduling") > strings.Index(out, "finance") {
		t.Error("categories printed out of match order")
	}
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"classify", "batch", "serve", "taxonomy"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
	if rootCmd.Version != config.Version {
		t.Errorf("Version = %q, want %q", rootCmd.Version, config.Version)
	}
}
