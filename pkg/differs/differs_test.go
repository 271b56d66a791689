package differs_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/getoutreach/testharness/pkg/differs"
)

func TestMatches(t *testing.T) {
	capture := differs.CaptureString()
	expected := map[string]interface{}{
		"ts":      differs.RFC3339NanoTime(),
		"elapsed": differs.Seconds(),
		"any":     differs.AnyString(),
		"run":     capture,
		"run2":    capture,
		"msg":     differs.Contains("Running"),
		"float":   differs.FloatRange(4, 5),
	}
	actual := map[string]interface{}{
		"ts":      time.Now().Format(time.RFC3339Nano),
		"elapsed": "0.104",
		"any":     "x",
		"run":     "8d1c",
		"run2":    "8d1c",
		"msg":     "Started Running Test",
		"float":   4.5,
	}
	assert.Equal(t, cmp.Diff(expected, actual, differs.Custom()), "")
}

func TestMismatches(t *testing.T) {
	cases := map[string]struct {
		expected differs.CustomComparer
		actual   interface{}
	}{
		"seconds without decimals":  {differs.Seconds(), "1"},
		"seconds with two decimals": {differs.Seconds(), "0.10"},
		"negative seconds":          {differs.Seconds(), "-0.100"},
		"bad timestamp":             {differs.RFC3339NanoTime(), "yesterday"},
		"float out of range":        {differs.FloatRange(0, 1), 2.0},
		"not a string":              {differs.AnyString(), 3},
		"missing substring":         {differs.Contains("Finished"), "Started Running Test"},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Assert(t, !tc.expected.CompareCustom(tc.actual))
		})
	}
}

func TestCaptureStringRejectsSecondValue(t *testing.T) {
	capture := differs.CaptureString()
	assert.Assert(t, capture.CompareCustom("a"))
	assert.Assert(t, !capture.CompareCustom("b"))
	assert.Assert(t, capture.CompareCustom("a"))
}

func TestCaptureStringCapturesEmpty(t *testing.T) {
	capture := differs.CaptureString()
	assert.Assert(t, !capture.CompareCustom(1))
	assert.Assert(t, capture.CompareCustom(""))
	assert.Assert(t, !capture.CompareCustom("a"))
}

func TestComparerOnEitherSide(t *testing.T) {
	assert.Equal(t, cmp.Diff("0.250", differs.Seconds(), differs.Custom()), "")
	assert.Equal(t, cmp.Diff(differs.Seconds(), "0.250", differs.Custom()), "")
}
