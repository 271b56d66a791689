// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Sequential class runner and concurrent multi-class runner.

package harness

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/getoutreach/testharness/pkg/log"
	"github.com/getoutreach/testharness/pkg/testenv"
)

// ErrAborted is the Result error of a method whose unit never returned,
// because the body stopped its goroutine or panicked.
var ErrAborted = errors.New("test did not run to completion")

// ErrNoUnit is the Result error of every method of a Class without a
// Unit.
var ErrNoUnit = errors.New("class has no unit to run its methods")

// Outcome is the result kind of a method.
type Outcome string

// Outcomes reported by the Runner.
const (
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
)

// Result is the outcome of one method.
type Result struct {
	Method  Method
	Outcome Outcome
	// Err is the error the pipeline returned, unchanged.
	Err error
	// Duration is the wall clock time of the whole pipeline.
	Duration time.Duration
	// Runs is how often the method body was invoked.
	Runs int
}

// Passed reports whether the method passed.
func (r Result) Passed() bool {
	return r.Outcome == OutcomePassed
}

// Recorder observes every Result the Runner produces.
type Recorder interface {
	Observe(Result)
}

// Class is a test class: its methods in discovery order and a way to
// build the unit that runs a method once.
type Class struct {
	Package string
	Name    string
	Methods []Method
	// Unit returns the unit running m once. It is called once per
	// method and the unit is dropped after the method finished.
	Unit func(m Method) Unit
}

// FullName returns the package qualified class name.
func (c Class) FullName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrinter sets where the human readable lines go. The default is
// DefaultPrinter.
func WithPrinter(p Printer) Option {
	return func(r *Runner) {
		r.printer = p
	}
}

// WithRecorder adds a Recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorders = append(r.recorders, rec)
	}
}

// WithoutShuffle keeps methods in discovery order. Only meant for
// chasing down a specific failure locally.
func WithoutShuffle() Option {
	return func(r *Runner) {
		r.noShuffle = true
	}
}

// Runner runs test classes. It holds no per-class state and may be
// shared by concurrently running classes. The zero value runs methods
// in random order and prints through DefaultPrinter.
type Runner struct {
	printer   Printer
	recorders []Recorder
	noShuffle bool
}

// NewRunner returns a Runner. Creating one applies the process wide
// test environment, if that has not happened yet.
func NewRunner(opts ...Option) *Runner {
	testenv.Configure()

	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Order returns the order methods run in.
func (r *Runner) Order(methods []Method) []Method {
	if r.noShuffle {
		out := make([]Method, len(methods))
		copy(out, methods)
		return out
	}
	return Randomize(methods)
}

// Pipeline decorates base with repetition and timing.
func (r *Runner) Pipeline(m Method, base Unit) Unit {
	return Chain(base, Timer(m, r.printer), Repeater(m, r.printer))
}

// RunMethod runs one method through the pipeline and reports the
// Result to the recorders. The test environment is configured first
// if that has not happened yet.
//
// If the body ends its goroutine, RunMethod does not return either; the
// recorders still get a failed Result with ErrAborted. A panic is
// reported the same way and then continues unwinding.
func (r *Runner) RunMethod(ctx context.Context, m Method, base Unit) (res Result) {
	testenv.Configure()

	res = Result{Method: m, Outcome: OutcomeFailed}
	counted := func(ctx context.Context) error {
		res.Runs++
		return base(ctx)
	}

	start := time.Now()
	returned := false
	defer func() {
		res.Duration = time.Since(start)
		if !returned {
			res.Err = ErrAborted
		}
		for _, rec := range r.recorders {
			rec.Observe(res)
		}
	}()

	res.Err = r.Pipeline(m, counted)(ctx)
	returned = true
	if res.Err == nil {
		res.Outcome = OutcomePassed
	}
	return res
}

// RunClass runs every method of c, one at a time, in Order. A failing
// method does not stop the class.
func (r *Runner) RunClass(ctx context.Context, c Class) []Result {
	logger := log.With(log.F{"harness.run_id": uuid.NewString(), "harness.class": c.FullName()})
	methods := r.Order(c.Methods)
	logger.Debug(ctx, "class started", log.F{"harness.methods": len(methods)})

	results := make([]Result, 0, len(methods))
	failed := 0
	for _, m := range methods {
		res := r.runClassMethod(ctx, c, m)
		if !res.Passed() {
			failed++
			logger.Error(ctx, "test failed", m, log.F{"error": res.Err.Error()})
		}
		results = append(results, res)
	}

	logger.Debug(ctx, "class finished", log.F{"harness.methods": len(results), "harness.failed": failed})
	return results
}

// runClassMethod runs m with the unit of c. Without one the method
// fails with ErrNoUnit and is never started.
func (r *Runner) runClassMethod(ctx context.Context, c Class, m Method) Result {
	if c.Unit == nil {
		res := Result{Method: m, Outcome: OutcomeFailed, Err: ErrNoUnit}
		for _, rec := range r.recorders {
			rec.Observe(res)
		}
		return res
	}
	return r.RunMethod(ctx, m, c.Unit(m))
}

// RunClasses runs classes concurrently, at most parallelism at a time
// (unlimited if parallelism < 1). Methods within a class stay
// sequential. Results are returned per class in input order. The only
// error is the context's, when it is done before every class started.
func (r *Runner) RunClasses(ctx context.Context, classes []Class, parallelism int) ([][]Result, error) {
	results := make([][]Result, len(classes))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i := range classes {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.RunClass(gctx, classes[i])
			return nil
		})
	}
	return results, g.Wait()
}
