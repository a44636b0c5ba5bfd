package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvHuggingFaceAPIKey = "HUGGING_FACE_API_KEY"
	EnvHuggingFaceAPIURL = "HUGGING_FACE_API_URL"
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvOllamaAPIURL      = "OLLAMA_API_URL"
	EnvGitHubToken       = "GITHUB_TOKEN"
	EnvDefaultModel      = "DEFAULT_MODEL"
	EnvDefaultProvider   = "DEFAULT_PROVIDER"
	EnvLogLevel          = "LOG_LEVEL"
)

// Fallbacks for the non-secret settings.
const (
	DefaultOllamaAPIURL = "http://localhost:11434/v1"
	DefaultModel        = "openai/gpt-oss-120b:fastest"
	DefaultProvider     = "huggingface"
	DefaultLogLevel     = "WARN"
)

// defaultEnvFile is loaded when Load is called without explicit files.
const defaultEnvFile = ".env"

// Config is the flat set of settings the chatbot runs with.
type Config struct {
	// HuggingFace inference gateway
	HuggingFaceAPIKey string
	HuggingFaceAPIURL string

	// OpenAI
	OpenAIAPIKey string

	// Ollama
	OllamaAPIURL string

	// GitHubToken is read for parity with the deployment environment; the chat
	// flow does not use it.
	GitHubToken string

	DefaultModel    string
	DefaultProvider string
	LogLevel        string
}

// Load reads dotenv files into the process environment and returns the
// resulting configuration. Variables already set in the environment take
// precedence over the files.
//
// Without arguments the ./.env file is loaded if present; a missing default
// file is not an error. Files named explicitly must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", defaultEnvFile, err)
		}
		return FromEnv(), nil
	}

	if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("loading env files %v: %w", files, err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current process environment, applying the
// literal fallbacks for unset non-secret values.
func FromEnv() Config {
	return Config{
		HuggingFaceAPIKey: os.Getenv(EnvHuggingFaceAPIKey),
		HuggingFaceAPIURL: os.Getenv(EnvHuggingFaceAPIURL),
		OpenAIAPIKey:      os.Getenv(EnvOpenAIAPIKey),
		OllamaAPIURL:      getEnv(EnvOllamaAPIURL, DefaultOllamaAPIURL),
		GitHubToken:       os.Getenv(EnvGitHubToken),
		DefaultModel:      getEnv(EnvDefaultModel, DefaultModel),
		DefaultProvider:   getEnv(EnvDefaultProvider, DefaultProvider),
		LogLevel:          getEnv(EnvLogLevel, DefaultLogLevel),
	}
}

// getEnv returns the value of key, or fallback when the variable is unset.
// An explicitly empty variable is kept as empty.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
