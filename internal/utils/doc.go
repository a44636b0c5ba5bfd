// Package utils provides shared low-level helpers used by the chatbot
// internals: a synchronous JSON POST helper for provider APIs, string
// truncation for log output, and a generic pointer helper.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips and
// [StatusError] for inspecting non-2xx responses.
package utils
