// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Run suite methods in random order, optionally repeated.

// Package shuffler runs the Test methods of suite structs under `go test`.
//
// Methods defined on your suite struct are resolved at runtime, and all
// methods that start with Test and take a *testing.T are run, each as a
// subtest. The key thing is that the order of the methods is randomized
// on every run, with a fresh random source and no seed to pass around:
// the point is to find tests that only pass because of what ran before
// them.
//
// Every method is bracketed by two lines on stdout:
//
//	Started Running Test: LazySetSuite.TestAdd
//	Finished Running Test: LazySetSuite.TestAdd in 0.004 seconds.
//
// A suite can ask for methods to be run several times in a row by
// implementing Repeater. Repetition stops at the first failure, so a
// flaky method is reported as failed and never retried to success:
//
//	func (s *LazySetSuite) Repeats() map[string]int {
//	    return map[string]int{"TestConcurrentAdd": 20}
//	}
//
// Before the first suite runs, the process environment is configured
// once with the cluster test defaults from pkg/testenv.
//
// Optional hooks, all taking the *testing.T of their scope:
//
//	SetupSuite / TearDownSuite   once around the whole suite
//	SetupTest / TearDownTest     around every repetition of a method
//
// Per-repetition state must be reset in SetupTest or TearDownTest;
// t.Cleanup functions only run once the method is done with all of its
// repetitions.
//
// An example:
//
//	type LazySetSuite struct {
//	    set *LazySet
//	}
//
//	func (s *LazySetSuite) SetupTest(t *testing.T) {
//	    s.set = NewLazySet()
//	}
//
//	func (s *LazySetSuite) TestAddPanics(t *testing.T) {
//	    assert.Assert(t, cmp.Panics(func() { s.set.Add(1) }))
//	}
//
//	func TestLazySet(t *testing.T) {
//	    shuffler.Run(t, new(LazySetSuite))
//	}
//
// Caveat: methods of a suite never run in parallel. Do not call
// t.Parallel() in suite methods.
//
// The debug logs the harness writes for a method are cached per method:
// they are written out when it fails and dropped when it passes. Debug
// logs a test body writes with its own context use the shared cache of
// pkg/log. That cache is written out on any failure and is never
// purged by the shuffler, so parallel suites cannot drop each other's
// logs.
//
// Pass -shuffler.noshuffle to run methods in declaration order while
// tracking down a specific failure.
package shuffler
