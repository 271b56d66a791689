package harness_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"

	"github.com/getoutreach/testharness/pkg/harness"
)

func byName(a, b harness.Method) bool {
	return a.Name < b.Name
}

func names(ms []harness.Method) string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return strings.Join(out, ",")
}

func TestRandomizeIsPermutation(t *testing.T) {
	for _, in := range [][]harness.Method{
		nil,
		methods("TestA"),
		methods("TestA", "TestB"),
		methods("TestA", "TestB", "TestC", "TestD", "TestE"),
		methods("TestA", "TestA", "TestB"),
	} {
		out := harness.Randomize(in)
		assert.Equal(t, len(out), len(in))
		if diff := cmp.Diff(in, out, cmpopts.SortSlices(byName), cmpopts.EquateEmpty()); diff != "" {
			t.Fatal("not a permutation", diff)
		}
	}
}

func TestRandomizeLeavesInputAlone(t *testing.T) {
	in := methods("TestA", "TestB", "TestC", "TestD", "TestE", "TestF", "TestG")
	before := names(in)
	for i := 0; i < 20; i++ {
		harness.Randomize(in)
	}
	assert.Equal(t, names(in), before)
}

func TestRandomizeSingle(t *testing.T) {
	in := methods("TestOnly")
	out := harness.Randomize(in)
	assert.DeepEqual(t, out, in)

	out[0].Name = "TestChanged"
	assert.Equal(t, in[0].Name, "TestOnly")
}

func TestRandomizeVariesAcrossCalls(t *testing.T) {
	in := methods("A", "B", "C")
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[names(harness.Randomize(in))] = true
	}
	assert.Assert(t, len(seen) >= 2, "only saw %v", seen)
}

func TestRandomizeIsRoughlyUniform(t *testing.T) {
	in := methods("A", "B", "C")
	counts := map[string]int{}
	const draws = 6000
	for i := 0; i < draws; i++ {
		counts[names(harness.Randomize(in))]++
	}

	// six orders, 1000 expected each; 700 is more than ten standard
	// deviations away
	assert.Equal(t, len(counts), 6, "orders seen: %v", counts)
	for order, n := range counts {
		assert.Assert(t, n > 700, "order %s only drawn %d times", order, n)
	}
}
