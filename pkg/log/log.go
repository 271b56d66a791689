// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Structured JSON logging and raw line output for the harness.

// Package log implements the harness logging.
//
// Structured logs are JSON lines:
//
//	log.Info(ctx, "message", log.F{field: 42})
//	log.Warn(...)
//	log.Error(...)
//	log.Debug(...)
//
// log.Debug is not emitted right away but cached. If an error arrives
// within a couple of minutes of the debug log, or Flush is called, the
// cached entries are written out with their original timestamps. The
// test runners call Flush after a failing test and Purge after a
// passing one so a green run stays quiet.
//
// The cache is shared by the process unless a context carries its own
// buffer from WithDebugBuffer. Purge on such a context only drops its
// own entries, so a test purging its logs never discards the cached
// logs of another test that is failing at the same time.
//
// Human readable lines (the "Started Running Test" family) go through
// Write, which shares the same output as the structured logs.
package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/getoutreach/testharness/internal/logf"
	"github.com/getoutreach/testharness/pkg/log/internal/entries"
)

// nolint:gochecknoglobals // Why: sets up overwritable writers
var (
	// wrap stdout and stderr in sync writers to ensure that writes from
	// concurrently running suites are not interleaved.
	stdOutLock           = new(sync.RWMutex)
	stdOut     io.Writer = &syncWriter{w: os.Stdout}
	errOut     io.Writer = &syncWriter{w: os.Stderr}

	dbgEntries = entries.New()
)

// Marshaler is the interface to be implemented by items that can be logged.
//
// The MarshalLog function will be called by the logger with the
// addField function provided. The field value can itself be another
// Marshaler instance, in which case the field names are concatenated
// with dot to indicate nesting.
type Marshaler = logf.Marshaler

// F is a map of fields used for logging:
//
//	log.Info(ctx, "suite started", log.F{"suite": "LazySetSuite"})
type F = logf.F

type syncWriter struct {
	sync.Mutex
	w io.Writer
}

func (sw *syncWriter) Write(b []byte) (int, error) {
	sw.Lock()
	defer sw.Unlock()

	return sw.w.Write(b)
}

// SetOutput redirects all log output. Meant for tests that need to
// capture or filter logs.
func SetOutput(w io.Writer) {
	stdOutLock.Lock()
	defer stdOutLock.Unlock()

	stdOut = w
}

// Output returns the current log output.
func Output() io.Writer {
	stdOutLock.RLock()
	defer stdOutLock.RUnlock()
	return stdOut
}

// Write emits s followed by a newline as is, without any structure.
func Write(s string) {
	if _, err := fmt.Fprintln(Output(), s); err != nil {
		fmt.Fprintln(errOut, err)
	}
}

type debugBufferKey struct{}

// WithDebugBuffer returns a context with a debug cache of its own.
func WithDebugBuffer(ctx context.Context) context.Context {
	return context.WithValue(ctx, debugBufferKey{}, entries.New())
}

// scopedEntries returns the cache of ctx, or nil when it uses the
// shared one.
func scopedEntries(ctx context.Context) *entries.Entries {
	e, _ := ctx.Value(debugBufferKey{}).(*entries.Entries)
	return e
}

// flushDebug writes out the shared cache and the one of ctx.
func flushDebug(ctx context.Context) {
	dbgEntries.Flush(Write)
	if e := scopedEntries(ctx); e != nil {
		e.Flush(Write)
	}
}

// Debug emits a log at DEBUG level but only if an error happens
// within 2min of this event or Flush is called.
func Debug(ctx context.Context, message string, m ...Marshaler) {
	line := format(ctx, message, "DEBUG", time.Now(), m)
	if e := scopedEntries(ctx); e != nil {
		e.Append(line)
		return
	}
	dbgEntries.Append(line)
}

// Info emits a log at INFO level.
func Info(ctx context.Context, message string, m ...Marshaler) {
	Write(format(ctx, message, "INFO", time.Now(), m))
}

// Warn emits a log at WARN level.
func Warn(ctx context.Context, message string, m ...Marshaler) {
	Write(format(ctx, message, "WARN", time.Now(), m))
}

// Error emits a log at ERROR level, preceded by any cached debug logs.
func Error(ctx context.Context, message string, m ...Marshaler) {
	flushDebug(ctx)
	Write(format(ctx, message, "ERROR", time.Now(), m))
}

// Flush writes out the shared cached debug logs and those of ctx.
func Flush(ctx context.Context) {
	flushDebug(ctx)
}

// Purge clears cached debug logs without writing them out: the cache
// of ctx if it has one, the shared cache otherwise.
func Purge(ctx context.Context) {
	if e := scopedEntries(ctx); e != nil {
		e.Purge()
		return
	}
	dbgEntries.Purge()
}

func format(ctx context.Context, msg, level string, ts time.Time, mm Many) string {
	entry := F{"message": msg, "level": level, "@timestamp": ts.Format(time.RFC3339Nano)}
	mm.MarshalLog(entry.Set)

	if span := trace.SpanFromContext(ctx); span.SpanContext().TraceID().IsValid() {
		entry.Set("traceID", span.SpanContext().TraceID().String())
	}

	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(entry); err != nil {
		// report the serialization failure as JSON so parsers still
		// have a chance of understanding it
		err = json.NewEncoder(&b).Encode(map[string]string{
			"message":    fmt.Sprintf("testharness/log: failed to JSON encode log entry %s; err=%v", msg, err),
			"level":      "ERROR",
			"@timestamp": ts.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
	}

	return strings.TrimSpace(b.String())
}
