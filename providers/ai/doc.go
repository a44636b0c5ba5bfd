// Package ai defines the shared, provider-agnostic chat types used by every
// LLM backend of the chatbot. Each provider's conversion layer maps these
// types to its own wire format, keeping the rest of the codebase decoupled
// from provider-specific details.
//
// The central interface is [Provider]. Request data flows through
// [ChatRequest] and responses are returned as [ChatResponse].
package ai
