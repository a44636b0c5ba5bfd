package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// StatusError is returned by [DoPostSync] when the server answers with a
// non-2xx status. Body holds the raw response body, which for provider APIs
// usually carries the reason (invalid key, unknown model, quota).
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Body)
}

// DoPostSync performs a synchronous HTTP POST request with JSON body and parses the response.
// It sets the authorization header when apiKey is not empty and always closes the
// response body.
//
// Error Handling Strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - Connection failures return the wrapped transport error
//   - Non-2xx statuses return a *StatusError
//   - Response body close errors are logged but don't override primary errors
//   - JSON parsing errors include response preview for debugging
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	slog.DebugContext(ctx, "http request prepared",
		slog.String("method", http.MethodPost),
		slog.String("url", url),
		slog.Int("body_size", len(jsonBody)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	requestStart := time.Now()
	res, err := httpClient.Do(req)
	requestDuration := time.Since(requestStart)

	if err != nil {
		slog.DebugContext(ctx, "http request failed",
			slog.String("url", url),
			slog.Duration("duration", requestDuration),
			slog.String("error", err.Error()),
		)
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if closeErr := Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	slog.DebugContext(ctx, "http response received",
		slog.Int("status_code", res.StatusCode),
		slog.Int("body_size", len(respBody)),
		slog.Duration("duration", requestDuration),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &StatusError{StatusCode: res.StatusCode, Body: string(respBody)}
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), 500))
	}

	return res, &resStruct, nil
}
