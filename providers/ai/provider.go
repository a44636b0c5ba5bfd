package ai

import (
	"context"
	"errors"
)

// Provider is the interface every LLM backend implements. A provider is bound
// to one base URL and one credential for its whole lifetime.
type Provider interface {
	// SendMessage sends a chat request to the provider and returns the first
	// completion choice. Returns an error if the provider call fails, the
	// context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)
}

var (
	// ErrProvider wraps every transport, status and decoding failure returned
	// by a provider, so callers can tell request failures from local ones.
	ErrProvider = errors.New("provider request failed")

	// ErrNoChoices is returned when the provider answers without any choice.
	ErrNoChoices = errors.New("no choices in response")
)
