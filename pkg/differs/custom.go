// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Custom comparers for go-cmp.

// Package differs provides go-cmp comparers for values that are only
// known by shape, such as timestamps or elapsed times in log entries.
//
//	expected := log.F{"@timestamp": differs.RFC3339NanoTime(), "message": "x"}
//	diff := cmp.Diff(expected, actual, differs.Custom())
package differs

import "github.com/google/go-cmp/cmp"

// CustomComparer is a placeholder in an expected value that decides by
// itself whether the actual value matches.
type CustomComparer interface {
	CompareCustom(o interface{}) bool
}

// Custom is the cmp.Option that makes CustomComparer values match,
// whichever side of the diff they are on.
func Custom() cmp.Option {
	return cmp.FilterValues(
		func(l, r interface{}) bool {
			_, _, ok := split(l, r)
			return ok
		},
		cmp.Comparer(func(l, r interface{}) bool {
			c, other, _ := split(l, r)
			return c.CompareCustom(other)
		}),
	)
}

// split returns the comparer among l and r and the value it is
// compared against.
func split(l, r interface{}) (CustomComparer, interface{}, bool) {
	if c, ok := l.(CustomComparer); ok {
		return c, r, true
	}
	if c, ok := r.(CustomComparer); ok {
		return c, l, true
	}
	return nil, nil, false
}

// Customf converts a function into a custom comparer
type Customf func(o interface{}) bool

// CompareCustom implements CustomComparer.
func (c Customf) CompareCustom(o interface{}) bool {
	return c(o)
}

// stringf builds a comparer that only accepts strings passing match.
func stringf(match func(s string) bool) CustomComparer {
	return Customf(func(o interface{}) bool {
		s, ok := o.(string)
		return ok && match(s)
	})
}
