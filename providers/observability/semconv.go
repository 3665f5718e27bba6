package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "deepseek")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "deepseek-chat")
	AttrLLMModel = "llm.model"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"
)

// --- Token Usage Attributes ---

const (
	// AttrLLMTokensPrompt is the number of prompt tokens
	AttrLLMTokensPrompt = "llm.tokens.prompt" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensCompletion is the number of completion tokens
	AttrLLMTokensCompletion = "llm.tokens.completion" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Chart Pipeline Attributes ---

const (
	// AttrChartPoints is the number of points in the normalized chart
	AttrChartPoints = "chart.points"

	// AttrChartBaziLabels is the number of pillar labels in the analysis
	AttrChartBaziLabels = "chart.bazi_labels"

	// AttrChartContentLength is the completion content length in characters
	AttrChartContentLength = "chart.content_length"

	// AttrChartDiscontinuities is the number of points whose open level
	// disagrees with the previous point's close level
	AttrChartDiscontinuities = "chart.discontinuities"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanGenerateChart is the span name for a full chart generation request
	SpanGenerateChart = "chart.generate"

	// SpanLLMRequest is the span name for LLM API requests
	SpanLLMRequest = "llm.request"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the start of an LLM request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the end of an LLM request
	EventLLMRequestEnd = "llm.request.end"

	// EventChartParsed marks a successful extraction of the chart JSON
	EventChartParsed = "chart.parsed"

	// EventChartDiscontinuity marks chart points whose open level does not
	// continue from the previous close; logged, never failed on
	EventChartDiscontinuity = "chart.discontinuity"
)

// --- Metric Names ---

const (
	// MetricChartRequestCount is the counter for chart generation requests
	MetricChartRequestCount = "lifekline.chart.request.count"

	// MetricChartRequestDuration is the histogram for request duration
	MetricChartRequestDuration = "lifekline.chart.request.duration"

	// MetricChartTokensTotal is the counter for total tokens spent
	MetricChartTokensTotal = "lifekline.chart.tokens.total"
)
