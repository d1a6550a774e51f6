package main

import (
	"io"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/output"
	"github.com/hejijunhao/triage/internal/output/async"
	"github.com/hejijunhao/triage/internal/output/multi"
	"github.com/hejijunhao/triage/internal/output/stdout"
	"github.com/hejijunhao/triage/internal/output/webhook"
)

// buildOutput assembles the configured destinations. w receives rendered
// records when non-nil; the webhook is added when a URL is set. Returns
// nil when there is nowhere to send records.
func buildOutput(oc config.OutputConfig, w io.Writer) output.Output {
	var outs []output.Output
	if w != nil {
		outs = append(outs, stdout.New(w, stdout.ParseFormat(oc.Format), oc.Pretty))
	}

	if wh := oc.Webhook; wh.URL != "" {
		var o output.Output = webhook.New(wh.URL,
			webhook.WithHeaders(wh.Headers),
			webhook.WithBatchSize(wh.BatchSize),
			webhook.WithFlushInterval(wh.FlushInterval),
		)
		if wh.Async {
			o = async.New(o)
		}
		outs = append(outs, o)
	}

	switch len(outs) {
	case 0:
		return nil
	case 1:
		return outs[0]
	default:
		return multi.New(outs...)
	}
}
