// Package observability defines the core interfaces and semantic conventions
// used for distributed tracing, metrics collection, and structured logging
// throughout lifekline.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. Callers propagate an
// active [Span] through a [context.Context] using [ContextWithSpan] and
// retrieve it with [SpanFromContext]; components that only have a context
// can still attach events to the surrounding span.
//
// The semconv.go file contains the standard attribute-key, span-name and
// event-name constants used when recording observations, ensuring
// consistency across the client, pipeline and transport layers.
package observability
