package main

import (
	"context"
	"fmt"

	"flint/internal/config"
	"flint/internal/trace"
)

// setupTracing builds the tracer described by cfg and attaches it to ctx.
// The returned cleanup flushes and closes the tracer.
func setupTracing(ctx context.Context, cfg config.Trace) (context.Context, func(), error) {
	level, err := trace.ParseLevel(cfg.Level)
	if err != nil {
		return ctx, nil, err
	}
	if level == trace.LevelOff {
		return trace.WithTracer(ctx, trace.Nop), func() {}, nil
	}
	format, err := trace.ParseFormat(cfg.Format)
	if err != nil {
		return ctx, nil, err
	}
	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: cfg.Output})
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cleanup := func() {
		// Best-effort: a failed trace flush must not change the exit status
		_ = tracer.Close() //nolint:errcheck
	}
	return trace.WithTracer(ctx, tracer), cleanup, nil
}
