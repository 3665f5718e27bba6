// Package chart defines the canonical life K-line result shape and the
// normalization/validation stages that map a loosely shaped parsed value
// onto it.
//
// Normalize absorbs field-name drift (chartData vs chart_points vs kline),
// string-encoded numbers and string-encoded sub-documents into the canonical
// shape, substituting documented fallbacks for anything that does not
// convert. It never fails; Validate is the single gate that decides whether
// the normalized value meets the minimum shape, and on rejection it captures
// a Snapshot rich enough to debug prompt or schema drift without re-issuing
// the model request.
package chart
