package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leofalp/chatbot/core/config"
	"github.com/leofalp/chatbot/internal/repl"
	"github.com/leofalp/chatbot/providers/ai/factory"
)

type capturedRequest struct {
	Auth        string
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// newChatServer answers every chat completion with reply and records the
// decoded request bodies.
func newChatServer(t *testing.T, reply string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var requests []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		var req capturedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		req.Auth = r.Header.Get("Authorization")
		requests = append(requests, req)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": req.Model,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": reply},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 3, "completion_tokens": 4, "total_tokens": 7},
		})
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

// executeRoot runs the root command with args and input in a directory with no
// .env file.
func executeRoot(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCommand_OllamaConversation(t *testing.T) {
	server, requests := newChatServer(t, "¡Hola! ¿En qué puedo ayudarte?")
	t.Setenv(config.EnvOllamaAPIURL, server.URL+"/v1")
	t.Setenv(config.EnvLogLevel, "")

	stdout, stderr, err := executeRoot(t, "hola\nexit\n", "--provider", "ollama", "--model", "llama3")
	if err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}

	want := repl.Greeting + "\n" +
		"Usuario: Chatbot: ¡Hola! ¿En qué puedo ayudarte?\n" +
		"Usuario: " + repl.Farewell + "\n"
	if stdout != want {
		t.Errorf("unexpected transcript:\n got: %q\nwant: %q", stdout, want)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requests))
	}
	req := (*requests)[0]
	if req.Auth != "Bearer "+factory.OllamaPlaceholderKey {
		t.Errorf("unexpected Authorization header %q", req.Auth)
	}
	if req.Model != "llama3" {
		t.Errorf("expected model llama3, got %q", req.Model)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "hola" {
		t.Errorf("expected a single user message, got %+v", req.Messages)
	}
	if req.Temperature == nil || *req.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", req.Temperature)
	}
	if req.MaxTokens == nil || *req.MaxTokens != 150 {
		t.Errorf("expected max_tokens 150, got %v", req.MaxTokens)
	}
}

func TestRootCommand_EnvFile(t *testing.T) {
	server, requests := newChatServer(t, "ok")
	// Registered so the values written by the dotenv loader are restored.
	t.Setenv(config.EnvOllamaAPIURL, "")
	t.Setenv(config.EnvDefaultProvider, "")
	t.Setenv(config.EnvDefaultModel, "")
	for _, key := range []string{config.EnvOllamaAPIURL, config.EnvDefaultProvider, config.EnvDefaultModel} {
		if err := os.Unsetenv(key); err != nil {
			t.Fatal(err)
		}
	}

	envFile := filepath.Join(t.TempDir(), "chatbot.env")
	content := "OLLAMA_API_URL=" + server.URL + "/v1\nDEFAULT_PROVIDER=ollama\nDEFAULT_MODEL=phi3\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := executeRoot(t, "hola\n", "--env-file", envFile); err != nil {
		t.Fatalf("unexpected error: %v (stderr %q)", err, stderr)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*requests))
	}
	if (*requests)[0].Model != "phi3" {
		t.Errorf("expected model from env file, got %q", (*requests)[0].Model)
	}
}

func TestRootCommand_UnknownProvider(t *testing.T) {
	stdout, stderr, err := executeRoot(t, "hola\n", "--provider", "anthropic")
	if !errors.Is(err, factory.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no transcript, got %q", stdout)
	}
	if !strings.Contains(stderr, "anthropic") {
		t.Errorf("expected provider name in error output, got %q", stderr)
	}
}

func TestRootCommand_MissingConfiguration(t *testing.T) {
	t.Setenv(config.EnvOpenAIAPIKey, "")

	_, stderr, err := executeRoot(t, "hola\n", "--provider", "openai")
	if !errors.Is(err, factory.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if !strings.Contains(stderr, config.EnvOpenAIAPIKey) {
		t.Errorf("expected missing variable in error output, got %q", stderr)
	}
}

func TestRootCommand_MissingEnvFile(t *testing.T) {
	_, _, err := executeRoot(t, "", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	if _, _, err := executeRoot(t, "", "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
