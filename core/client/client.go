package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/baobaozi233/lifekline/core/chart"
	"github.com/baobaozi233/lifekline/core/extract"
	"github.com/baobaozi233/lifekline/internal/prompt"
	"github.com/baobaozi233/lifekline/providers/ai"
	"github.com/baobaozi233/lifekline/providers/observability"
)

// Client drives a full chart generation round trip: prompt construction,
// provider call, tolerant extraction, normalization and validation. The
// pipeline itself is a pure function of the completion text; Client adds
// only the transport call and observability around it.
type Client struct {
	provider   ai.Provider
	model      string
	minBazi    int
	generation *ai.GenerationConfig
	observer   observability.Provider
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model identifier sent to the provider. Defaults to the
// LIFEKLINE_MODEL environment variable, falling back to the provider's own
// default when empty.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithMinBaziLabels overrides the minimum pillar label count the validator
// requires. The default is chart.DefaultMinBaziLabels.
func WithMinBaziLabels(n int) Option {
	return func(c *Client) { c.minBazi = n }
}

// WithGenerationConfig sets sampling parameters for the provider call.
func WithGenerationConfig(cfg *ai.GenerationConfig) Option {
	return func(c *Client) { c.generation = cfg }
}

// WithObserver attaches an observability provider. Without one the client
// stays silent.
func WithObserver(obs observability.Provider) Option {
	return func(c *Client) { c.observer = obs }
}

// New creates a chart client around the given LLM provider.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	c := &Client{
		provider: provider,
		model:    os.Getenv("LIFEKLINE_MODEL"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UpstreamError reports that the transport collaborator failed before the
// pipeline could run: the provider call errored, or it succeeded with no
// usable completion content. The underlying provider error, if any, is
// passed through unchanged via Unwrap.
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream failure: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("upstream failure: %s", e.Reason)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// GenerateChart asks the model for a life K-line chart and returns the
// canonical result. Error classification follows the pipeline stages:
// *UpstreamError for transport problems, *extract.ParseError when no JSON
// could be recovered from the completion, *chart.SchemaError when the
// recovered value fails shape validation. A non-nil result is always
// complete.
func (c *Client) GenerateChart(ctx context.Context, info prompt.BirthInfo) (*chart.Result, error) {
	var span observability.Span
	if c.observer != nil {
		ctx, span = c.observer.StartSpan(ctx, observability.SpanGenerateChart,
			observability.String(observability.AttrLLMModel, c.model),
		)
		defer span.End()
		ctx = observability.ContextWithSpan(ctx, span)
	}

	req := ai.ChatRequest{
		Model:            c.model,
		SystemPrompt:     prompt.System,
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: prompt.BuildChartPrompt(info)}},
		GenerationConfig: c.generation,
	}

	resp, err := c.provider.SendMessage(ctx, req)
	if err != nil {
		return nil, c.fail(span, &UpstreamError{Reason: "provider call failed", Err: err})
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return nil, c.fail(span, &UpstreamError{Reason: "empty completion content"})
	}
	raw := resp.Content

	parsed, err := extract.Decode(raw)
	if err != nil {
		return nil, c.fail(span, err)
	}

	normalized := chart.Normalize(parsed)
	validator := chart.Validator{MinBaziLabels: c.minBazi}
	if err := validator.Validate(raw, parsed, normalized); err != nil {
		return nil, c.fail(span, err)
	}

	result, err := chart.FromNormalized(normalized)
	if err != nil {
		return nil, c.fail(span, err)
	}

	if span != nil {
		span.AddEvent(observability.EventChartParsed,
			observability.Int(observability.AttrChartPoints, len(result.ChartData)),
			observability.Int(observability.AttrChartBaziLabels, len(result.Analysis.Bazi)),
			observability.Int(observability.AttrChartContentLength, len(raw)),
		)
		if gaps := discontinuities(result.ChartData); gaps > 0 {
			// Domain plausibility is not validated; a broken candlestick
			// sequence is only worth a trace event.
			span.AddEvent(observability.EventChartDiscontinuity,
				observability.Int(observability.AttrChartDiscontinuities, gaps),
			)
		}
		span.SetStatus(observability.StatusOK, "")
	}

	return result, nil
}

// fail records err on the span, if any, and returns it unchanged.
func (c *Client) fail(span observability.Span, err error) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	}
	return err
}

// discontinuities counts points whose open level does not continue from the
// previous point's close.
func discontinuities(points []chart.Point) int {
	gaps := 0
	for i := 1; i < len(points); i++ {
		if points[i].Open != points[i-1].Close {
			gaps++
		}
	}
	return gaps
}
