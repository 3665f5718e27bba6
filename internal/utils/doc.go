// Package utils provides shared low-level helpers used throughout the
// lifekline internals: an HTTP POST helper for synchronous JSON round-trips
// with AI provider APIs, string truncation for bounded diagnostics, and
// generic pointer/JSON-logging conveniences.
//
// Key entry points: [DoPostSync] for provider calls, [TruncateString] for
// raw-text previews embedded in errors, [Ptr] for pointer literals.
package utils
