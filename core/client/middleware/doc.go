// Package middleware provides built-in middleware for the chatbot client.
//
// [NewLoggingMiddleware] emits structured slog entries before and after every
// provider call, with three verbosity levels (Minimal, Standard, Verbose).
//
// # Usage
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// Middlewares execute outermost-first: the first entry in WithMiddleware runs
// first on the way in and last on the way out.
package middleware
