// Package testutil holds helpers shared by the polysolve test suites.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/njchilds90/polysolve/internal/logging"
)

// NewTestLogger returns a debug-level text logger built the same way the CLI
// builds its own, with each record routed to t.Log. Output shows up only for
// failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return mustLogger(t, tbWriter{tb: t})
}

// LogBuffer collects log records for assertions. It is safe for concurrent
// writers such as HTTP handlers.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Contains reports whether any record so far contains s.
func (b *LogBuffer) Contains(s string) bool { return strings.Contains(b.String(), s) }

// NewCapturingLogger returns a debug-level text logger that records into the
// returned buffer and echoes to t.Log.
func NewCapturingLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()
	lb := &LogBuffer{}
	return mustLogger(t, teeWriter{lb, tbWriter{tb: t}}), lb
}

func mustLogger(t testing.TB, w io.Writer) *slog.Logger {
	t.Helper()
	l, err := logging.New(w, "debug", logging.FormatText)
	if err != nil {
		t.Fatalf("build test logger: %v", err)
	}
	return l
}

type tbWriter struct{ tb testing.TB }

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

type teeWriter struct {
	a, b io.Writer
}

func (w teeWriter) Write(p []byte) (int, error) {
	if _, err := w.a.Write(p); err != nil {
		return 0, err
	}
	return w.b.Write(p)
}
