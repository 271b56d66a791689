// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Bounded buffer of formatted debug log lines.

// Package entries holds the cached debug logs of the log package.
package entries

import (
	"sync"
	"time"
)

// MaxItems is the maximum number of debug lines cached.
const MaxItems = 200

// MaxAge is the age past which a cached line is dropped on flush.
const MaxAge = 2 * time.Minute

// New returns an empty buffer.
func New() *Entries {
	return &Entries{}
}

// Entries holds a limited size buffer of formatted debug lines.
type Entries struct {
	mu    sync.Mutex
	lines []line
}

type line struct {
	s  string
	ts time.Time
}

// Append caches s, evicting the oldest line when full.
func (e *Entries) Append(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = append(e.lines, line{s, time.Now()})
	if len(e.lines) > MaxItems {
		e.lines = e.lines[1:]
	}
}

// Flush hands every line that is not stale to write and empties the
// buffer. write is called without holding the lock.
func (e *Entries) Flush(write func(s string)) {
	e.mu.Lock()
	lines := e.lines
	e.lines = nil
	e.mu.Unlock()

	for _, l := range lines {
		if time.Since(l.ts) <= MaxAge {
			write(l.s)
		}
	}
}

// Purge drops every cached line.
func (e *Entries) Purge() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lines = nil
}

// Len returns the number of cached lines.
func (e *Entries) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.lines)
}
