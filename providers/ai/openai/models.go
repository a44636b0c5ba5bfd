package openai

import (
	"github.com/leofalp/chatbot/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

type chatCompletionResponse struct {
	ID                string       `json:"id"`
	Object            string       `json:"object"` // "chat.completion"
	Created           int64        `json:"created"`
	Model             string       `json:"model"`
	SystemFingerprint string       `json:"system_fingerprint,omitempty"`
	Choices           []chatChoice `json:"choices"`
	Usage             *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int                 `json:"index"`
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"` // "stop", "length", "content_filter"
}

type chatResponseMessage struct {
	Role    string `json:"role"` // "assistant"
	Content string `json:"content,omitempty"`
	Refusal string `json:"refusal,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CONVERSION FUNCTIONS
*/

// requestToChatCompletion converts ai.ChatRequest to chat completions format
func requestToChatCompletion(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model:    request.Model,
		Messages: make([]chatMessage, 0, len(request.Messages)),
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		req.Temperature = cfg.Temperature
		req.MaxTokens = cfg.MaxTokens
	}

	return req
}

// chatCompletionToGeneric converts the first choice of a chat completions
// response to ai.ChatResponse. Callers guarantee at least one choice.
func chatCompletionToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	choice := resp.Choices[0]

	result := &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Object:       resp.Object,
		Created:      resp.Created,
		Role:         ai.MessageRole(choice.Message.Role),
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Refusal:      choice.Message.Refusal,
	}

	if resp.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return result
}
