// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Start/finish lines and wall clock timing around a method.

package harness

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/getoutreach/testharness/pkg/log"
)

// tracerName is the instrumentation scope of the spans started here.
const tracerName = "github.com/getoutreach/testharness/pkg/harness"

// StartMessage is the line printed before a method runs.
func StartMessage(m Method) string {
	return "Started Running Test: " + m.String()
}

// FinishMessage is the line printed after a method passed.
func FinishMessage(m Method, elapsed time.Duration) string {
	return fmt.Sprintf("Finished Running Test: %s in %s seconds.", m, FormatElapsed(elapsed))
}

// FormatElapsed renders d as seconds with millisecond precision and
// exactly three decimals. Negative durations render as 0.000.
func FormatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%.3f", float64(ms)/1000)
}

// Timed wraps unit with the start and finish lines.
//
// The finish line is only printed when unit succeeds; an error is
// returned unchanged. The execution runs in a span named after the
// method on the global OpenTelemetry tracer provider.
func Timed(unit Unit, m Method, p Printer) Unit {
	if p == nil {
		p = DefaultPrinter
	}

	return func(ctx context.Context) error {
		p(StartMessage(m))
		start := time.Now()

		ctx, span := otel.Tracer(tracerName).Start(ctx, m.String(), trace.WithAttributes(
			attribute.String("test.class", m.FullClassName()),
			attribute.String("test.method", m.Name),
			attribute.Int("test.repetitions", m.Repetitions()),
		))
		defer span.End()

		if err := unit(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}

		elapsed := time.Since(start)
		p(FinishMessage(m, elapsed))
		log.Debug(ctx, "test finished", m, log.F{
			"harness.duration_ms": elapsed.Milliseconds(),
			"harness.elapsed":     FormatElapsed(elapsed),
		})
		return nil
	}
}

// Timer is Timed as a Middleware.
func Timer(m Method, p Printer) Middleware {
	return func(u Unit) Unit {
		return Timed(u, m, p)
	}
}
