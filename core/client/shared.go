package client

import (
	"sync"

	"github.com/leofalp/chatbot/core/config"
	"github.com/leofalp/chatbot/providers/ai"
	"github.com/leofalp/chatbot/providers/ai/factory"
)

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Shared returns the process-wide client. The first call constructs it from
// llmProvider, or, when llmProvider is nil, from the HuggingFace provider
// configured in the environment. Every later call returns the same client and
// error and ignores its argument.
func Shared(llmProvider ai.Provider) (*Client, error) {
	sharedOnce.Do(func() {
		if llmProvider == nil {
			p, err := factory.Create(config.FromEnv(), string(factory.KindHuggingFace))
			if err != nil {
				sharedErr = err
				return
			}
			llmProvider = p
		}
		sharedClient, sharedErr = New(llmProvider)
	})
	return sharedClient, sharedErr
}
