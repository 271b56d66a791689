// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Provides helpers for creating a shuffler test suite
package shuffler

import (
	"context"
	"flag"
	"fmt"
	"reflect"
	"regexp"
	"runtime/debug"
	"sort"
	"testing"

	"github.com/pkg/errors"

	"github.com/getoutreach/testharness/pkg/harness"
	"github.com/getoutreach/testharness/pkg/log"
)

// nolint:gochecknoglobals // Why: flag used in multiple places
var noShuffle = flag.Bool("shuffler.noshuffle", false, "Run suite methods in declaration order")

// nolint:gochecknoglobals
var (
	testName = regexp.MustCompile("^Test")
	tType    = reflect.TypeOf((*testing.T)(nil))
)

// ErrTestFailed is returned by the unit of a method whose body marked
// its *testing.T as failed without stopping it.
var ErrTestFailed = errors.New("test failed")

// TestSuite is any struct with Test methods.
type TestSuite interface{}

// Repeater is implemented by suites that want methods repeated. The map
// goes from method name to run count; counts below 2 mean run once.
type Repeater interface {
	Repeats() map[string]int
}

// SuiteSetup runs once before the methods of a suite.
type SuiteSetup interface {
	SetupSuite(t *testing.T)
}

// SuiteTearDown runs once after the methods of a suite.
type SuiteTearDown interface {
	TearDownSuite(t *testing.T)
}

// TestSetup runs before every repetition of every method.
type TestSetup interface {
	SetupTest(t *testing.T)
}

// TestTearDown runs after every repetition of every method, even a
// failed one.
type TestTearDown interface {
	TearDownTest(t *testing.T)
}

// failOnPanic exists to ensure we capture the specific test context
// in the panic
func failOnPanic(t *testing.T, finished *bool) {
	err := recover()
	if !*finished && err == nil && !t.Failed() && !t.Skipped() {
		err = fmt.Errorf("panic(nil)")
	}
	if err != nil {
		t.Fatalf("test panicked: %v\n%s", err, debug.Stack())
	}
}

// Run runs every suite as a subtest named after its type, and the Test
// methods of each suite, in random order, as subtests of that.
func Run(t *testing.T, suites ...TestSuite) {
	RunWithOptions(t, nil, suites...)
}

// RunWithOptions is Run with extra harness options, for instance a
// metrics recorder.
func RunWithOptions(t *testing.T, opts []harness.Option, suites ...TestSuite) {
	var finished bool
	defer failOnPanic(t, &finished)

	if *noShuffle {
		opts = append(opts, harness.WithoutShuffle())
	}
	runner := harness.NewRunner(opts...)

	if len(suites) == 0 {
		t.Log("No suites to run")
	}
	for _, ts := range suites {
		s := resolveSuite(ts)
		t.Run(s.class.Name, func(t *testing.T) {
			runSuite(t, runner, s)
		})
	}
	finished = true
}

// suite is a resolved TestSuite.
type suite struct {
	value reflect.Value
	class harness.Class
	funcs map[string]reflect.Value
	// unknown lists Repeats entries without a matching method.
	unknown []string
}

// resolveSuite uses the reflect package to build up the list of all the
// methods that our package consumers have defined on their TestSuites.
func resolveSuite(ts TestSuite) *suite {
	typ := reflect.TypeOf(ts)
	named := typ
	if named.Kind() == reflect.Ptr {
		named = named.Elem()
	}

	var repeats map[string]int
	if r, ok := ts.(Repeater); ok {
		repeats = r.Repeats()
	}

	s := &suite{
		value: reflect.ValueOf(ts),
		class: harness.Class{Package: named.PkgPath(), Name: named.Name()},
		funcs: map[string]reflect.Value{},
	}
	for i := 0; i < typ.NumMethod(); i++ {
		method := typ.Method(i)
		if !testName.MatchString(method.Name) || !isTestFunc(method.Type) {
			continue
		}

		s.class.Methods = append(s.class.Methods, harness.Method{
			Package: s.class.Package,
			Class:   s.class.Name,
			Name:    method.Name,
			Repeat:  repeats[method.Name],
		})
		s.funcs[method.Name] = method.Func
	}

	for name := range repeats {
		if _, ok := s.funcs[name]; !ok {
			s.unknown = append(s.unknown, name)
		}
	}
	sort.Strings(s.unknown)
	return s
}

// isTestFunc reports whether a method expression has the shape
// func(receiver, *testing.T).
func isTestFunc(ft reflect.Type) bool {
	return ft.NumIn() == 2 && ft.In(1) == tType && ft.NumOut() == 0
}

func runSuite(t *testing.T, runner *harness.Runner, s *suite) {
	for _, name := range s.unknown {
		t.Errorf("Repeats names %q, which is not a test method of %s", name, s.class.Name)
	}
	if len(s.class.Methods) == 0 {
		t.Log("No tests for this suite")
		return
	}

	ts := s.value.Interface()
	if setup, ok := ts.(SuiteSetup); ok {
		setup.SetupSuite(t)
	}
	if teardown, ok := ts.(SuiteTearDown); ok {
		defer teardown.TearDownSuite(t)
	}

	for _, m := range runner.Order(s.class.Methods) {
		m := m
		// debug logs of this method only
		ctx := log.WithDebugBuffer(context.Background())
		passed := t.Run(m.Name, func(t *testing.T) {
			var finished bool
			defer failOnPanic(t, &finished)

			runner.RunMethod(ctx, m, s.unit(t, m))
			finished = true
		})

		// Flush all debug logs from the test on failure
		if !passed {
			log.Flush(ctx)
		} else {
			// Clear the debug queue so its contents don't contaminate the logs for the next test
			log.Purge(ctx)
		}
	}
}

// unit returns the unit running method m of s once against t.
func (s *suite) unit(t *testing.T, m harness.Method) harness.Unit {
	fn := s.funcs[m.Name]
	ts := s.value.Interface()

	return func(ctx context.Context) error {
		if setup, ok := ts.(TestSetup); ok {
			setup.SetupTest(t)
		}
		if teardown, ok := ts.(TestTearDown); ok {
			defer teardown.TearDownTest(t)
		}

		fn.Call([]reflect.Value{s.value, reflect.ValueOf(t)})
		if t.Failed() {
			return ErrTestFailed
		}
		return nil
	}
}
