package factory

import (
	"strings"

	"github.com/leofalp/chatbot/core/config"
	"github.com/leofalp/chatbot/providers/ai/openai"
)

// Kind identifies one of the supported provider backends.
type Kind string

const (
	KindHuggingFace Kind = "huggingface"
	KindOpenAI      Kind = "openai"
	KindOllama      Kind = "ollama"
)

// OllamaPlaceholderKey is sent as bearer token to local Ollama servers, which
// do not check it.
const OllamaPlaceholderKey = "ollama"

// Kinds returns every supported provider kind.
func Kinds() []Kind {
	return []Kind{KindHuggingFace, KindOpenAI, KindOllama}
}

// ParseKind maps a provider name to its Kind. Surrounding spaces and letter
// case are ignored.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch kind {
	case KindHuggingFace, KindOpenAI, KindOllama:
		return kind, nil
	}
	return "", &UnknownProviderError{Name: name}
}

// Settings is the closed set of provider descriptions. It is implemented only
// by the settings structs of this package; each one knows how to build its
// own provider, so there is no fallback branch to forget.
type Settings interface {
	Kind() Kind
	build() (*openai.Provider, error)
}

// HuggingFaceSettings configures the HuggingFace inference router.
type HuggingFaceSettings struct {
	APIKey  string
	BaseURL string
}

func (HuggingFaceSettings) Kind() Kind { return KindHuggingFace }

func (s HuggingFaceSettings) build() (*openai.Provider, error) {
	if s.APIKey == "" {
		return nil, &ConfigError{Field: config.EnvHuggingFaceAPIKey}
	}
	if s.BaseURL == "" {
		return nil, &ConfigError{Field: config.EnvHuggingFaceAPIURL}
	}
	return openai.New().WithAPIKey(s.APIKey).WithBaseURL(s.BaseURL), nil
}

// OpenAISettings configures the OpenAI API.
type OpenAISettings struct {
	APIKey string
}

func (OpenAISettings) Kind() Kind { return KindOpenAI }

func (s OpenAISettings) build() (*openai.Provider, error) {
	if s.APIKey == "" {
		return nil, &ConfigError{Field: config.EnvOpenAIAPIKey}
	}
	return openai.New().WithAPIKey(s.APIKey).WithBaseURL(openai.DefaultBaseURL), nil
}

// OllamaSettings configures a local Ollama server. An empty BaseURL selects
// [config.DefaultOllamaAPIURL].
type OllamaSettings struct {
	BaseURL string
}

func (OllamaSettings) Kind() Kind { return KindOllama }

func (s OllamaSettings) build() (*openai.Provider, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultOllamaAPIURL
	}
	return openai.New().WithAPIKey(OllamaPlaceholderKey).WithBaseURL(baseURL), nil
}

// SettingsFor extracts the settings of kind from cfg.
func SettingsFor(cfg config.Config, kind Kind) (Settings, error) {
	switch kind {
	case KindHuggingFace:
		return HuggingFaceSettings{APIKey: cfg.HuggingFaceAPIKey, BaseURL: cfg.HuggingFaceAPIURL}, nil
	case KindOpenAI:
		return OpenAISettings{APIKey: cfg.OpenAIAPIKey}, nil
	case KindOllama:
		return OllamaSettings{BaseURL: cfg.OllamaAPIURL}, nil
	}
	return nil, &UnknownProviderError{Name: string(kind)}
}

// Build constructs the provider described by settings.
func Build(settings Settings) (*openai.Provider, error) {
	return settings.build()
}

// Create builds the provider registered under name using the values in cfg.
func Create(cfg config.Config, name string) (*openai.Provider, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	settings, err := SettingsFor(cfg, kind)
	if err != nil {
		return nil, err
	}

	return Build(settings)
}
