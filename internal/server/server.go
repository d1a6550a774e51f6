// Package server exposes the classification engine and task preparation
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hejijunhao/triage/internal/config"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/output"
	"github.com/hejijunhao/triage/internal/task"
)

const maxBodyBytes = 1 << 20

// Classifier derives a classification from task text.
type Classifier interface {
	Classify(title, description string) model.Classification
}

// Preparer turns a request into a classified record.
type Preparer interface {
	Prepare(req model.TaskRequest) (model.Record, error)
}

// Option customizes server construction.
type Option func(*Server)

// WithOutput sets where records created through POST /api/tasks are sent.
// Default: records are returned to the caller only.
func WithOutput(out output.Output) Option {
	return func(s *Server) { s.output = out }
}

// WithTaxonomy sets the tables served by GET /api/taxonomy.
// Default: taxonomy.Default().
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(s *Server) {
		if t != nil {
			s.taxonomy = t
		}
	}
}

// WithClock allows tests to control health-check timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Server serves the triage HTTP API.
type Server struct {
	cfg        config.ServerConfig
	classifier Classifier
	preparer   Preparer
	output     output.Output
	taxonomy   *taxonomy.Taxonomy
	clock      func() time.Time
}

// New creates a Server. It does not listen until Serve or ListenAndServe.
func New(cfg config.ServerConfig, c Classifier, p Preparer, opts ...Option) *Server {
	s := &Server{
		cfg:        cfg,
		classifier: c,
		preparer:   p,
		taxonomy:   taxonomy.Default(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routed API with logging and CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/classify", s.handleClassify)
	mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/taxonomy", s.handleTaxonomy)
	return logRequests(allowCORS(mux))
}

// ListenAndServe binds cfg.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests for at most cfg.ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	slog.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK", Timestamp: s.clock().UTC()})
}

type classifyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, task.ErrTitleRequired.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.classifier.Classify(req.Title, req.Description))
}

type createTaskResponse struct {
	Success            bool                 `json:"success"`
	Task               model.TaskDraft      `json:"task"`
	AutoClassification model.Classification `json:"auto_classification"`
	FinalUsed          model.FinalUsed      `json:"final_used"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req model.TaskRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, err := s.preparer.Prepare(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.output != nil {
		if err := s.output.Write(r.Context(), rec); err != nil {
			slog.Error("task output failed", "id", rec.Task.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "task output failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, createTaskResponse{
		Success:            true,
		Task:               rec.Task,
		AutoClassification: rec.AutoClassification,
		FinalUsed:          rec.FinalUsed,
	})
}

type ruleView struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
	Actions  []string `json:"actions,omitempty"`
}

type taxonomyResponse struct {
	Categories      []ruleView `json:"categories"`
	Priorities      []ruleView `json:"priorities"`
	FallbackActions []string   `json:"fallback_actions"`
}

func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	var resp taxonomyResponse
	for _, r := range s.taxonomy.Categories() {
		resp.Categories = append(resp.Categories, ruleView{
			Label:    string(r.Label),
			Keywords: r.Keywords,
			Actions:  s.taxonomy.Actions(r.Label),
		})
	}
	for _, r := range s.taxonomy.Priorities() {
		resp.Priorities = append(resp.Priorities, ruleView{Label: string(r.Label), Keywords: r.Keywords})
	}
	resp.FallbackActions = s.taxonomy.Actions(model.General)
	writeJSON(w, http.StatusOK, resp)
}

// decodeBody reads a size-capped JSON body into dst, writing the error
// response itself when it fails.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload exceeds limit")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
