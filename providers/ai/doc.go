// Package ai defines the provider-neutral chat model: [ChatRequest],
// [ChatResponse] and the [Provider] interface every transport implements.
// Concrete providers live in subpackages (e.g. deepseek) and convert between
// this neutral model and their wire formats.
package ai
