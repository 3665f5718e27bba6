package deepseek

import (
	"strings"

	"github.com/baobaozi233/lifekline/internal/utils"
	"github.com/baobaozi233/lifekline/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"` // "chat.completion"
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "content_filter"
}

type chatResponseMessage struct {
	Role    string `json:"role"` // "assistant"
	Content string `json:"content,omitempty"`

	// DeepSeek reasoner models return chain-of-thought here; other
	// OpenAI-compatible gateways use "reasoning".
	ReasoningContent string `json:"reasoning_content,omitempty"`
	Reasoning        string `json:"reasoning,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CONVERSION FUNCTIONS
*/

// requestToChatCompletion converts ai.ChatRequest to chat completions format.
func requestToChatCompletion(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model: request.Model,
	}

	if request.SystemPrompt != "" {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			req.Temperature = utils.Ptr(float64(cfg.Temperature))
		}
		if cfg.TopP > 0 {
			req.TopP = utils.Ptr(float64(cfg.TopP))
		}
		if cfg.MaxTokens > 0 {
			req.MaxTokens = utils.Ptr(cfg.MaxTokens)
		}
	}

	return req
}

// chatCompletionToGeneric converts a chat completion response to
// ai.ChatResponse, separating chain-of-thought out of the content so that
// downstream JSON extraction never sees it.
func chatCompletionToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	if len(resp.Choices) == 0 {
		return &ai.ChatResponse{
			Id:           resp.ID,
			Model:        resp.Model,
			Object:       resp.Object,
			Created:      resp.Created,
			FinishReason: "error",
		}
	}

	choice := resp.Choices[0]

	content := strings.TrimSpace(choice.Message.Content)
	reasoning := strings.TrimSpace(choice.Message.ReasoningContent)
	if reasoning == "" {
		reasoning = strings.TrimSpace(choice.Message.Reasoning)
	}

	// Some models embed reasoning in <think> tags inside the content itself.
	if inContent := extractReasoningFromThinkTags(content); inContent != "" {
		if reasoning != "" {
			reasoning += "\n"
		}
		reasoning += inContent
		content = cleanThinkTags(content)
	}

	chatResp := &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Object:       resp.Object,
		Created:      resp.Created,
		Content:      content,
		Reasoning:    reasoning,
		FinishReason: choice.FinishReason,
	}

	if resp.Usage != nil {
		chatResp.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return chatResp
}

// extractReasoningFromThinkTags extracts reasoning content from
// <think>...</think> tags. Returns the extracted reasoning text, or empty
// string if no closing tag is found.
func extractReasoningFromThinkTags(content string) string {
	startTag := "<think>"
	endTag := "</think>"

	start := strings.Index(content, startTag)
	if start == -1 {
		start = 0 // no start tag: consider from the beginning
	} else {
		start += len(startTag)
	}

	end := strings.Index(content, endTag)
	if end == -1 || end <= start {
		return "" // mandatory end tag
	}

	return strings.TrimSpace(content[start:end])
}

// cleanThinkTags removes <think>...</think> tags and their content, leaving
// only the final answer.
func cleanThinkTags(content string) string {
	startTag := "<think>"
	endTag := "</think>"

	start := strings.Index(content, startTag)
	if start == -1 {
		start = 0
	}

	end := strings.Index(content, endTag)
	if end == -1 || end <= start {
		return content
	}

	return strings.TrimSpace(content[:start] + content[end+len(endTag):])
}
