// Copyright 2026 Outreach Corporation. All Rights Reserved.

// Description: Loggers carrying fixed fields.

package log

import "context"

// With creates a logger that captures the marshaler arguments.
//
// All methods exposed by the logger automatically add the provided marshalers.
func With(m ...Marshaler) logger { //nolint: revive // logger is intentionally hidden.
	return logger{m}
}

// logger is intentionally not exported as this prevents logger from
// being tacked on to structs or passed as args to functions.
type logger struct {
	m []Marshaler
}

// Debug emits a cached log at DEBUG level.
func (l logger) Debug(ctx context.Context, message string, m ...Marshaler) {
	Debug(ctx, message, append(m, l.m...)...)
}

// Info emits a log at INFO level.
func (l logger) Info(ctx context.Context, message string, m ...Marshaler) {
	Info(ctx, message, append(m, l.m...)...)
}

// Warn emits a log at WARN level.
func (l logger) Warn(ctx context.Context, message string, m ...Marshaler) {
	Warn(ctx, message, append(m, l.m...)...)
}

// Error emits a log at ERROR level.
func (l logger) Error(ctx context.Context, message string, m ...Marshaler) {
	Error(ctx, message, append(m, l.m...)...)
}
