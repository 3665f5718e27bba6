// Package deepseek implements the ai.Provider interface for the DeepSeek
// API using the OpenAI-compatible /chat/completions endpoint. Reasoning
// output (reasoning_content field or in-content <think> tags) is separated
// from the answer content before it reaches the extraction pipeline.
package deepseek
