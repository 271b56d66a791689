// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Fail-fast repetition of a test method.

package harness

import (
	"context"
	"fmt"
)

type repetitionKey struct{}

// WithRepetition returns a context carrying the 1-based repetition n.
func WithRepetition(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, repetitionKey{}, n)
}

// Repetition returns the 1-based repetition the context belongs to.
// Outside of a repeated method it is 1.
func Repetition(ctx context.Context) int {
	if n, ok := ctx.Value(repetitionKey{}).(int); ok {
		return n
	}
	return 1
}

// RepeatMessage is the progress line printed before repetition n.
func RepeatMessage(m Method, n int) string {
	return fmt.Sprintf("---> Repeating test [%s:%s], run count [%d]", m.FullClassName(), m.Name, n)
}

// Repeat makes unit run m.Repeat times in a row.
//
// If m is not repeated, unit itself is returned. Otherwise every run
// completes before the next one starts, a progress line is printed
// before each run after the first, and the first error is returned
// as is without running the remaining repetitions.
func Repeat(unit Unit, m Method, p Printer) Unit {
	if !m.Repeated() {
		return unit
	}
	if p == nil {
		p = DefaultPrinter
	}

	n := m.Repetitions()
	return func(ctx context.Context) error {
		for i := 1; i <= n; i++ {
			if i > 1 {
				p(RepeatMessage(m, i))
			}
			if err := unit(WithRepetition(ctx, i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Repeater is Repeat as a Middleware.
func Repeater(m Method, p Printer) Middleware {
	return func(u Unit) Unit {
		return Repeat(u, m, p)
	}
}
