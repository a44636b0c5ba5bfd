package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/leofalp/chatbot/internal/utils"
	"github.com/leofalp/chatbot/providers/ai"
)

// Sampling defaults applied by GetResponse when no RequestOption overrides them.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 150
)

// ErrNilProvider is returned by New when no provider is given.
var ErrNilProvider = errors.New("client: provider must not be nil")

// Client owns a single provider for its whole lifetime.
type Client struct {
	provider ai.Provider
	send     SendFunc
}

// ClientOptions holds the construction-time configuration of a Client.
type ClientOptions struct {
	// Middlewares wrap every provider call, outermost first.
	Middlewares []Middleware
}

// WithMiddleware appends middlewares to the send chain. The first middleware
// given is the outermost wrapper.
func WithMiddleware(middlewares ...Middleware) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// New creates a client bound to llmProvider.
func New(llmProvider ai.Provider, opts ...func(*ClientOptions)) (*Client, error) {
	if llmProvider == nil {
		return nil, ErrNilProvider
	}

	options := &ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	for i, mw := range options.Middlewares {
		if mw == nil {
			return nil, fmt.Errorf("client: middleware at index %d is nil", i)
		}
	}

	return &Client{
		provider: llmProvider,
		send:     buildSendChain(llmProvider, options.Middlewares),
	}, nil
}

// Provider returns the provider the client was constructed with.
func (c *Client) Provider() ai.Provider {
	return c.provider
}

type requestOptions struct {
	temperature float64
	maxTokens   int
}

// RequestOption adjusts the sampling parameters of a single GetResponse call.
type RequestOption func(*requestOptions)

// WithTemperature overrides [DefaultTemperature].
func WithTemperature(temperature float64) RequestOption {
	return func(o *requestOptions) {
		o.temperature = temperature
	}
}

// WithMaxTokens overrides [DefaultMaxTokens].
func WithMaxTokens(maxTokens int) RequestOption {
	return func(o *requestOptions) {
		o.maxTokens = maxTokens
	}
}

// GetResponse sends messages to model in a single request and returns the
// first completion's message exactly as the provider produced it. Provider
// errors are returned unchanged; there is no retry.
func (c *Client) GetResponse(ctx context.Context, model string, messages []ai.Message, opts ...RequestOption) (ai.Message, error) {
	options := requestOptions{
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(&options)
	}

	response, err := c.send(ctx, ai.ChatRequest{
		Model:    model,
		Messages: messages,
		GenerationConfig: &ai.GenerationConfig{
			Temperature: utils.Ptr(options.temperature),
			MaxTokens:   utils.Ptr(options.maxTokens),
		},
	})
	if err != nil {
		return ai.Message{}, err
	}
	if response == nil {
		return ai.Message{}, ai.ErrNoChoices
	}

	return response.Message(), nil
}
