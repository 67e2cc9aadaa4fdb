// Package trace provides the tracing subsystem of the flint front-end.
//
// Tracing follows a single scan through its phases so slow or failing
// inputs can be diagnosed without a debugger.
//
// # Usage
//
//	flint --trace=phase main.fl
//	flint --trace=debug --trace-format=ndjson main.fl 2> trace.ndjson
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only error events
//   - LevelPhase: Driver and pass boundaries (load, lex, parse)
//   - LevelDetail: File-level facts (size, lines, flags, config source)
//   - LevelDebug: Everything including one event per token
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
