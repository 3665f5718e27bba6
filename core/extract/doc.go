// Package extract recovers a single JSON value from free-form LLM completion
// text. Models are asked to return one JSON object, but real completions wrap
// it in prose, markdown fences or sentinel markers, and frequently bend the
// grammar (trailing commas, single-quoted strings).
//
// The package is split into three layers:
//
//   - span extraction: BetweenMarkers, BalancedBlock and greedy first/last
//     bracket spans locate the candidate JSON text inside the completion
//   - syntax repair: StripTrailingCommas and NormalizeQuotes fix the two
//     most common near-miss syntax errors without a full JSON5 grammar
//   - orchestration: Decode tries an ordered ladder of (span, repair)
//     combinations against strict parsing and returns the first success
//
// Decode is a pure function of its input: attempts never share state, so
// concurrent invocations need no synchronization.
package extract
