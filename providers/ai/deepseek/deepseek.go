package deepseek

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/baobaozi233/lifekline/internal/utils"
	"github.com/baobaozi233/lifekline/providers/ai"
)

const (
	defaultBaseURL          = "https://api.deepseek.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// DefaultModel is the chat model used when the request does not name one.
	DefaultModel = "deepseek-chat"
)

// Provider implements the ai.Provider interface against the DeepSeek API.
// The wire format is OpenAI chat-completions compatible, so pointing
// WithBaseURL at any compatible endpoint (OpenRouter, a local gateway, a
// test server) works unchanged.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider configured from the environment: DEEPSEEK_API_KEY
// for authentication and DEEPSEEK_BASE_URL to override the endpoint.
func New() *Provider {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	baseURL := os.Getenv("DEEPSEEK_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider.
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API.
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client.
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the ai.Provider interface.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	if request.Model == "" {
		request.Model = DefaultModel
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestToChatCompletion(request))
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from DeepSeek API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return chatCompletionToGeneric(*resp), nil
}

// IsStopMessage reports whether the given chat response should be treated as
// a terminal completion.
func (p *Provider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	return message.Content == ""
}
