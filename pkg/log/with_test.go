package log_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/getoutreach/testharness/pkg/differs"
	"github.com/getoutreach/testharness/pkg/log"
	"github.com/getoutreach/testharness/pkg/log/logtest"
)

type withSuite struct{}

func (withSuite) TestWith(t *testing.T) {
	logs := logtest.NewLogRecorder(t)
	defer logs.Close()

	logger := log.With(log.F{"with": "hey"})
	ctx := context.Background()

	log.Purge(ctx)
	logger.Debug(ctx, "Debug message", log.F{"some": "thing"})
	logger.Info(ctx, "Info message", log.F{"some": "thing"})
	logger.Warn(ctx, "Warn message", log.F{"some": "thing"})
	logger.Error(ctx, "Error message", log.F{"some": "thing"})

	expected := []log.F{
		{
			"@timestamp": differs.RFC3339NanoTime(),
			"level":      "INFO",
			"message":    "Info message",
			"some":       "thing",
			"with":       "hey",
		},
		{
			"@timestamp": differs.RFC3339NanoTime(),
			"level":      "WARN",
			"message":    "Warn message",
			"some":       "thing",
			"with":       "hey",
		},
		{
			"@timestamp": differs.RFC3339NanoTime(),
			"level":      "DEBUG",
			"message":    "Debug message",
			"some":       "thing",
			"with":       "hey",
		},
		{
			"@timestamp": differs.RFC3339NanoTime(),
			"level":      "ERROR",
			"message":    "Error message",
			"some":       "thing",
			"with":       "hey",
		},
	}

	if diff := cmp.Diff(expected, logs.Entries(), differs.Custom()); diff != "" {
		t.Fatal("unexpected log entries", diff)
	}
}
