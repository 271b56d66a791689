// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Test orchestration: ordering, repetition and timing.

// Package harness orchestrates the execution of the test methods of a
// class.
//
// A test method runs as a Unit, a func(ctx) error that runs the method
// once. Behavior is layered on top of a Unit with middleware:
//
//	unit := harness.Timed(harness.Repeat(base, m, p), m, p)
//
// Repeat runs a method several times in a row and stops at the first
// failure. Timed prints the familiar
//
//	Started Running Test: LazySetSuite.TestAdd
//	Finished Running Test: LazySetSuite.TestAdd in 0.012 seconds.
//
// pair around the whole, possibly repeated, execution.
//
// The methods of a class are handed over in discovery order and run in
// a fresh random order every time (Randomize). There is deliberately no
// seed: a different order on every CI run is how hidden coupling
// between tests gets found.
//
// Runner ties it together. Methods of one class always run one at a
// time; different classes may run concurrently with RunClasses.
package harness
