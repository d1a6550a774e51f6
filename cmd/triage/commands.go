package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/pipeline"
	"github.com/hejijunhao/triage/internal/server"
	"github.com/hejijunhao/triage/internal/source"
)

var (
	overrideCategory string
	overridePriority string
	assignedTo       string
	dueDate          string
	echoRecords      bool
)

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&overrideCategory, "category", "", "apply this category instead of the automatic one")
	f.StringVar(&overridePriority, "priority", "", "apply this priority instead of the automatic one")
	f.StringVar(&assignedTo, "assign", "", "assignee recorded on the task")
	f.StringVar(&dueDate, "due", "", "due date, RFC 3339 or YYYY-MM-DD")

	serveCmd.Flags().BoolVar(&echoRecords, "echo", false, "also print created task records to stdout")
}

// ==========================================
// classify
// ==========================================

var classifyCmd = &cobra.Command{
	Use:   "classify <title> [description]",
	Short: "Classify a single task",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	req := model.TaskRequest{
		Title:      args[0],
		AssignedTo: assignedTo,
		DueDate:    dueDate,
		Category:   overrideCategory,
		Priority:   overridePriority,
	}
	if len(args) > 1 {
		req.Description = args[1]
	}

	_, prep := newPreparer()
	rec, err := prep.Prepare(req)
	if err != nil {
		return err
	}

	out := buildOutput(cfg.Output, cmd.OutOrStdout())
	werr := out.Write(cmd.Context(), rec)
	return errors.Join(werr, out.Close())
}

// ==========================================
// batch
// ==========================================

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Classify one task per line from a file or stdin",
	Long: `Reads one task per line. A line starting with '{' is decoded as a JSON
request (title, description, assigned_to, due_date, category, priority);
any other non-blank line is a bare title. Records are written as they are
produced; invalid requests are logged and skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	ctx, cancel := signalContext()
	defer cancel()

	_, prep := newPreparer()
	p := pipeline.New(source.NewReader(in), prep, buildOutput(cfg.Output, cmd.OutOrStdout()))

	stats, runErr := p.Run(ctx)
	closeErr := p.Close()
	slog.Info("batch complete", "processed", stats.Processed, "rejected", stats.Rejected)

	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	return errors.Join(runErr, closeErr)
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// ==========================================
// serve
// ==========================================

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	var echo io.Writer
	if echoRecords {
		echo = cmd.OutOrStdout()
	}

	eng, prep := newPreparer()
	opts := []server.Option{}
	out := buildOutput(cfg.Output, echo)
	if out != nil {
		opts = append(opts, server.WithOutput(out))
	}

	slog.Info("starting triage", "version", cmd.Root().Version, "addr", cfg.Server.Addr, "webhook", cfg.Output.Webhook.URL != "")
	err := server.New(cfg.Server, eng, prep, opts...).ListenAndServe(ctx)

	if out != nil {
		err = errors.Join(err, out.Close())
	}
	return err
}

// ==========================================
// taxonomy
// ==========================================

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the keyword tables in match order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printTaxonomy(cmd.OutOrStdout(), taxonomy.Default())
	},
}

func printTaxonomy(w io.Writer, tax *taxonomy.Taxonomy) {
	heading := color.New(color.Bold, color.Underline)
	label := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)

	heading.Fprintln(w, "Categories")
	for _, r := range tax.Categories() {
		label.Fprintf(w, "  %-11s", r.Label)
		fmt.Fprintln(w, strings.Join(r.Keywords, ", "))
		dim.Fprintf(w, "  %-11s-> %s\n", "", strings.Join(tax.Actions(r.Label), ", "))
	}
	label.Fprintf(w, "  %-11s", model.General)
	dim.Fprintf(w, "(no match) -> %s\n", strings.Join(tax.Actions(model.General), ", "))

	fmt.Fprintln(w)
	heading.Fprintln(w, "Priorities")
	for _, r := range tax.Priorities() {
		label.Fprintf(w, "  %-11s", r.Label)
		fmt.Fprintln(w, strings.Join(r.Keywords, ", "))
	}
	label.Fprintf(w, "  %-11s", model.Low)
	dim.Fprintln(w, "(no match)")
}
