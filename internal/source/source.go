// Package source reads task requests for batch classification.
package source

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/hejijunhao/triage/internal/model"
)

const defaultMaxLineSize = 1 << 20 // 1MiB

// Source produces task requests.
type Source interface {
	// Stream sends requests until the input is exhausted or ctx is done,
	// then closes the channel.
	Stream(ctx context.Context) (<-chan model.TaskRequest, error)

	// Err reports the error that ended the stream, if any. Only meaningful
	// once the channel from Stream is closed.
	Err() error
}

// Option configures a Reader.
type Option func(*Reader)

// WithMaxLineSize sets the longest accepted input line in bytes. Default: 1MiB.
func WithMaxLineSize(n int) Option {
	return func(r *Reader) { r.maxLineSize = n }
}

// Reader reads one request per line. Lines starting with '{' are decoded as
// JSON TaskRequest objects; any other non-blank line is taken as a bare title.
// Blank lines are skipped, as are JSON lines that fail to decode.
type Reader struct {
	r           io.Reader
	maxLineSize int

	mu      sync.Mutex
	started bool
	err     error
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{r: r, maxLineSize: defaultMaxLineSize}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Stream starts reading in a background goroutine. A Reader can be streamed once.
func (rd *Reader) Stream(ctx context.Context) (<-chan model.TaskRequest, error) {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	if rd.started {
		return nil, errors.New("source: already streamed")
	}
	rd.started = true

	ch := make(chan model.TaskRequest)
	go rd.run(ctx, ch)
	return ch, nil
}

// Err returns the scanner or context error that stopped the stream.
func (rd *Reader) Err() error {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	return rd.err
}

func (rd *Reader) run(ctx context.Context, ch chan<- model.TaskRequest) {
	var err error
	defer func() {
		rd.mu.Lock()
		rd.err = err
		rd.mu.Unlock()
		close(ch)
	}()

	sc := bufio.NewScanner(rd.r)
	sc.Buffer(make([]byte, 0, min(64*1024, rd.maxLineSize)), rd.maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		req, ok, perr := ParseLine(sc.Text())
		if perr != nil {
			slog.Warn("skipping undecodable line", "line", lineNo, "error", perr)
			continue
		}
		if !ok {
			continue
		}
		select {
		case ch <- req:
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
	if scanErr := sc.Err(); scanErr != nil {
		err = fmt.Errorf("source: line %d: %w", lineNo+1, scanErr)
	}
}

// ParseLine decodes a single input line. ok is false for blank lines.
func ParseLine(line string) (req model.TaskRequest, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.TaskRequest{}, false, nil
	}
	if !strings.HasPrefix(line, "{") {
		return model.TaskRequest{Title: line}, true, nil
	}
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return model.TaskRequest{}, false, fmt.Errorf("source: decode: %w", err)
	}
	return req, true, nil
}
