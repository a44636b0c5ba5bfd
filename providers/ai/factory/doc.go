// Package factory builds the chatbot's LLM provider from configuration.
//
// The supported backends form a closed set, each described by its own
// settings struct:
//
//   - [HuggingFaceSettings]: hosted inference gateway, key and base URL required
//   - [OpenAISettings]: direct OpenAI API, key required
//   - [OllamaSettings]: local server, no credential
//
// [Create] maps a provider name such as "huggingface" to its settings using a
// [config.Config] and builds the provider. Failures are reported as
// [ErrConfiguration] (a required value is missing) or [ErrInvalidArgument]
// (the name is not recognized). No network call is made.
package factory
