package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/chatbot/core/client"
	"github.com/leofalp/chatbot/internal/utils"
	"github.com/leofalp/chatbot/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name, total duration, and token counts.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard logs everything in Minimal plus the message count and
	// finish reason.
	LogLevelStandard

	// LogLevelVerbose logs everything in Standard plus the first message content
	// and the full response content, each truncated to 500 characters.
	//
	// WARNING: this logs raw prompt and response text. Use it only for local
	// debugging.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a Middleware that emits structured slog log
// entries before and after every provider call.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			logger.InfoContext(ctx, "llm send",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			if response == nil {
				return nil, nil
			}

			logger.InfoContext(ctx, "llm send completed",
				buildResponseAttrs(response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing chat request,
// expanding detail according to the requested verbosity level.
func buildRequestAttrs(request ai.ChatRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("message_count", len(request.Messages)))
		if cfg := request.GenerationConfig; cfg != nil {
			if cfg.Temperature != nil {
				attrs = append(attrs, slog.Float64("temperature", *cfg.Temperature))
			}
			if cfg.MaxTokens != nil {
				attrs = append(attrs, slog.Int("max_tokens", *cfg.MaxTokens))
			}
		}
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		first := request.Messages[0]
		attrs = append(attrs,
			slog.String("first_message_role", string(first.Role)),
			slog.String("first_message_content", utils.TruncateString(first.Content, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs returns slog attributes for a completed chat response,
// expanding detail according to the requested verbosity level.
func buildResponseAttrs(response *ai.ChatResponse, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if response.Usage != nil {
		attrs = append(attrs,
			slog.Int("prompt_tokens", response.Usage.PromptTokens),
			slog.Int("completion_tokens", response.Usage.CompletionTokens),
			slog.Int("total_tokens", response.Usage.TotalTokens),
		)
	}

	if level >= LogLevelStandard && response.FinishReason != "" {
		attrs = append(attrs, slog.String("finish_reason", response.FinishReason))
	}

	if level >= LogLevelVerbose && response.Content != "" {
		attrs = append(attrs,
			slog.String("response_content", utils.TruncateString(response.Content, truncateLen)),
		)
	}

	return attrs
}
