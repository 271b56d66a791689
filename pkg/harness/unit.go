// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Executable units and their composition.

package harness

import (
	"context"

	"github.com/getoutreach/testharness/pkg/log"
)

// Unit runs a test method once. A non-nil error is a failure.
//
// A Unit may also never return, when the test body stops its goroutine
// (testing.T.FailNow) or panics. Middleware lets both pass through.
type Unit func(ctx context.Context) error

// Middleware decorates a Unit.
type Middleware func(Unit) Unit

// Chain applies mws to u so that the first middleware is the outermost.
func Chain(u Unit, mws ...Middleware) Unit {
	for i := len(mws) - 1; i >= 0; i-- {
		u = mws[i](u)
	}
	return u
}

// Printer emits one human readable line.
type Printer func(line string)

// DefaultPrinter writes lines through log.Write, to stdout unless the
// log output was redirected.
func DefaultPrinter(line string) {
	log.Write(line)
}
