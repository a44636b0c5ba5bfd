// Package openai implements the chatbot's [ai.Provider] for any
// OpenAI-compatible /chat/completions endpoint: the OpenAI API itself, the
// HuggingFace inference router, and a local Ollama server all speak the same
// wire format and differ only in base URL and credential.
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. Use [Provider.WithAPIKey] and
// [Provider.WithBaseURL] to override these values programmatically; the
// provider factory does this for every configured backend.
package openai
