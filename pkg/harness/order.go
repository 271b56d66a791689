// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Random method ordering.

package harness

import "math/rand/v2"

// Randomize returns a uniformly shuffled copy of methods. The input is
// left untouched. The shuffle uses the auto seeded global source, so
// two calls are independent and nothing about an order is reproducible.
func Randomize(methods []Method) []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
