// Package trace records what the front end is doing: driver steps, passes,
// per-crate work and, at the debug level, individual alias registrations.
//
// Enable it from the command line:
//
//	corund resolve --trace=- --trace-level=detail main.al
//
// Tracers travel through the pipeline in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
