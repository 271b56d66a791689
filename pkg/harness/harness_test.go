package harness_test

import (
	"sync"

	"github.com/getoutreach/testharness/pkg/harness"
)

// lines collects printed lines.
type lines struct {
	mu sync.Mutex
	l  []string
}

func (c *lines) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.l = append(c.l, s)
}

func (c *lines) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.l...)
}

// recorder collects observed results.
type recorder struct {
	mu      sync.Mutex
	results []harness.Result
}

func (r *recorder) Observe(res harness.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *recorder) get() []harness.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]harness.Result(nil), r.results...)
}

func method(name string, repeat int) harness.Method {
	return harness.Method{
		Package: "github.com/getoutreach/testharness/pkg/harness_test",
		Class:   "LazySetSuite",
		Name:    name,
		Repeat:  repeat,
	}
}

func methods(names ...string) []harness.Method {
	out := make([]harness.Method, 0, len(names))
	for _, n := range names {
		out = append(out, method(n, 0))
	}
	return out
}
