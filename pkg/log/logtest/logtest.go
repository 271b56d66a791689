// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Log capture for tests.

// Package logtest provides the ability to test logs
//
// Usage:
//
//	func MyTestFunc(t *testing.T) {
//	    logs := logtest.NewLogRecorder(t)
//	    defer logs.Close()
//	    .....
//	    if diff := cmp.Diff(expected, logs.Entries(), differs.Custom()); diff != "" {
//	        t.Fatal("logs unexpected", diff)
//	    }
//	}
//
// Lines that are not JSON (the human readable lines written through
// log.Write) are kept separately and returned by Lines.
package logtest

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/getoutreach/testharness/pkg/log"
)

// NewLogRecorder starts a new log recorder.
//
// Logs must be stopped by calling Close() on the recorder
func NewLogRecorder(t testing.TB) *LogRecorder {
	r := &LogRecorder{TB: t, oldOutput: log.Output()}
	log.SetOutput(r)
	return r
}

// LogRecorder holds the state
type LogRecorder struct {
	testing.TB
	oldOutput io.Writer

	mu      sync.Mutex
	entries []log.F
	lines   []string
}

// Write implements io.Writer. Every call carries exactly one line.
func (l *LogRecorder) Write(b []byte) (int, error) {
	trimmed := bytes.TrimSpace(b)

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var entry log.F
		if err := json.Unmarshal(trimmed, &entry); err == nil {
			l.entries = append(l.entries, entry)
			return len(b), nil
		}
	}
	l.lines = append(l.lines, strings.TrimRight(string(b), "\n"))
	return len(b), nil
}

// Close restores the previous log output.
func (l *LogRecorder) Close() {
	log.SetOutput(l.oldOutput)
}

// Entries returns the structured log entries.
func (l *LogRecorder) Entries() []log.F {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[:len(l.entries):len(l.entries)]
}

// Lines returns the raw lines written through log.Write.
func (l *LogRecorder) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lines[:len(l.lines):len(l.lines)]
}

// Map uses the given arguments `MarshalLog` function to serialize it
// into a flat map, the same way logs do.
func Map(m log.Marshaler) map[string]interface{} {
	ret := log.F{}
	m.MarshalLog(ret.Set)
	return ret
}
