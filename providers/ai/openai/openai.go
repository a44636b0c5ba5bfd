package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/leofalp/chatbot/internal/utils"
	"github.com/leofalp/chatbot/providers/ai"
)

const (
	// DefaultBaseURL is the OpenAI API root used when no base URL is configured.
	DefaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Provider implements ai.Provider for OpenAI-compatible chat-completions APIs.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a provider from OPENAI_API_KEY and OPENAI_API_BASE_URL,
// falling back to [DefaultBaseURL].
func New() *Provider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) *Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API. A trailing slash is dropped so
// the endpoint path joins cleanly.
func (p *Provider) WithBaseURL(baseURL string) *Provider {
	p.baseURL = strings.TrimSuffix(baseURL, "/")
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *Provider) WithHttpClient(httpClient *http.Client) *Provider {
	p.client = httpClient
	return p
}

// APIKey returns the credential sent as bearer token.
func (p *Provider) APIKey() string {
	return p.apiKey
}

// BaseURL returns the API root the provider is bound to.
func (p *Provider) BaseURL() string {
	return p.baseURL
}

// SendMessage implements the ai.Provider interface. It performs exactly one
// POST to {baseURL}/chat/completions and returns the first choice.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestToChatCompletion(request))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrProvider, err)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: empty response: %s", ai.ErrProvider, httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: %w", ai.ErrProvider, ai.ErrNoChoices)
	}

	return chatCompletionToGeneric(*resp), nil
}

var _ ai.Provider = (*Provider)(nil)
