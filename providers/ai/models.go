package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat message
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier
	Messages         []Message         `json:"messages"`                    // Ordered conversation sent to the model
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional sampling configuration
}

// Message represents a single message in a conversation
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// GenerationConfig carries the sampling parameters of a single request.
// Nil pointers are omitted from the wire request so the provider default applies.
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature [0..2]. Higher => more random; lower => more deterministic.
	MaxTokens   *int     `json:"max_tokens,omitempty"`  // Maximum number of tokens to generate
}

/*
	##### PROVIDER OUTPUT #####
*/

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the first choice of a chat completion
type ChatResponse struct {
	Id           string      `json:"id"`
	Model        string      `json:"model"`
	Object       string      `json:"object"`
	Created      int64       `json:"created"`
	Role         MessageRole `json:"role"`
	Content      string      `json:"content"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *Usage      `json:"usage,omitempty"`

	Refusal string `json:"refusal,omitempty"` // If model refuses to respond (safety/policy)
}

// Message returns the role/content pair of the response. An empty role is
// reported as [RoleAssistant].
func (r *ChatResponse) Message() Message {
	role := r.Role
	if role == "" {
		role = RoleAssistant
	}
	return Message{Role: role, Content: r.Content}
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)

// NewUserMessage wraps text as a single user-role message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
