// Package client is the chatbot's chat client: a thin owner of one
// [ai.Provider] that turns a model name and a message list into a single
// provider round trip and hands back the first completion's message.
//
// The primary entry point is [New], which accepts an [ai.Provider] and
// functional options (e.g. [WithMiddleware]). Applications construct one
// client at startup and pass it to whatever needs it. [Shared] offers the
// process-wide instance for callers that cannot thread a client through.
//
// Every [Client.GetResponse] call is independent: no history is kept, nothing
// is cached, and failures are returned to the caller untouched.
package client
