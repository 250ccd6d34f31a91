package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config holds all LLM provider configuration. An empty Provider means coach
// notes are disabled.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// Enabled reports whether a provider was selected.
func (c Config) Enabled() bool {
	return c.Provider != ""
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a disabled Config with per-provider model defaults.
// Coach notes are short, so the small models are the defaults.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     5 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from MATHCOACH_* variables. When
// MATHCOACH_LLM_PROVIDER is unset it falls back to DiscoverConfig, and to a
// disabled Config when no key is found either.
func ConfigFromEnv() Config {
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) Config {
	provider := getenv("MATHCOACH_LLM_PROVIDER")
	if provider == "" {
		if cfg, ok := discoverConfig(getenv); ok {
			return cfg
		}
	}

	cfg := DefaultConfig()
	cfg.Provider = provider

	env := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	env("MATHCOACH_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	env("MATHCOACH_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	env("MATHCOACH_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	env("MATHCOACH_OPENAI_MODEL", &cfg.OpenAI.Model)
	env("MATHCOACH_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	env("MATHCOACH_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	env("MATHCOACH_GEMINI_MODEL", &cfg.Gemini.Model)
	env("MATHCOACH_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	env("MATHCOACH_OPENROUTER_MODEL", &cfg.OpenRouter.Model)
	env("MATHCOACH_OPENROUTER_BASE_URL", &cfg.OpenRouter.BaseURL)

	if v := getenv("MATHCOACH_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := getenv("MATHCOACH_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}

	return cfg
}

// DiscoverConfig probes the vendors' standard API key variables in priority
// order (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first one found.
func DiscoverConfig() (Config, bool) {
	return discoverConfig(os.Getenv)
}

func discoverConfig(getenv func(string) string) (Config, bool) {
	cfg := DefaultConfig()

	switch {
	case getenv("GEMINI_API_KEY") != "":
		cfg.Provider = ProviderGemini
		cfg.Gemini.APIKey = getenv("GEMINI_API_KEY")
	case getenv("OPENAI_API_KEY") != "":
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = getenv("OPENAI_API_KEY")
	case getenv("ANTHROPIC_API_KEY") != "":
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = getenv("ANTHROPIC_API_KEY")
	case getenv("OPENROUTER_API_KEY") != "":
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = getenv("OPENROUTER_API_KEY")
	default:
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its required API key set.
// A disabled Config is valid.
func (c Config) Validate() error {
	missing := func(key, provider string) error {
		return fmt.Errorf("%s is required for the %s provider", key, provider)
	}
	switch c.Provider {
	case "":
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return missing("MATHCOACH_ANTHROPIC_API_KEY", c.Provider)
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return missing("MATHCOACH_OPENAI_API_KEY", c.Provider)
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return missing("MATHCOACH_GEMINI_API_KEY", c.Provider)
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return missing("MATHCOACH_OPENROUTER_API_KEY", c.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
