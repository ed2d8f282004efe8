// SPDX-License-Identifier: MIT

package logger

import "context"

type ctxKey int

const (
	keyLogger ctxKey = iota
	keyRunID
)

// NewContext returns a copy of ctx that carries l.
func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, keyLogger, l)
}

// FromContext returns the logger carried by ctx, or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(keyLogger).(Logger); ok && l != nil {
		return l
	}
	return Default()
}

// WithRunID returns a copy of ctx tagged with a benchmark run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRunID, id)
}

// RunID returns the run identifier carried by ctx, or "".
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(keyRunID).(string)
	return id
}

// L returns the logger for ctx: the carried logger (or Default), bound to
// ctx and tagged with run_id when ctx has one.
func L(ctx context.Context) Logger {
	l := FromContext(ctx).WithContext(ctx)
	if id := RunID(ctx); id != "" {
		return l.With("run_id", id)
	}
	return l
}
