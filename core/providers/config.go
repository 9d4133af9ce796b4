package providers

import (
	"fmt"
	"time"
)

// BaseConfig holds the settings shared by every provider adapter.
type BaseConfig struct {
	APIKey         string        `json:"api_key" yaml:"api_key"`
	Model          string        `json:"model" yaml:"model"`
	MaxTokens      int           `json:"max_tokens" yaml:"max_tokens"`
	Temperature    float64       `json:"temperature" yaml:"temperature"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	MaxRetries     int           `json:"max_retries" yaml:"max_retries"`
	RetryBaseDelay time.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`
	RetryMaxDelay  time.Duration `json:"retry_max_delay" yaml:"retry_max_delay"`
}

// DefaultBaseConfig returns the shared adapter defaults.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		MaxTokens:      4096,
		Temperature:    0.7,
		Timeout:        5 * time.Minute,
		MaxRetries:     3,
		RetryBaseDelay: 1 * time.Second,
		RetryMaxDelay:  30 * time.Second,
	}
}

func (c *BaseConfig) validate(provider string) error {
	if c.APIKey == "" {
		return fmt.Errorf("%s: api key is required", provider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("%s: max tokens must be positive, got %d", provider, c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("%s: temperature must be between 0 and 2, got %f", provider, c.Temperature)
	}
	return nil
}

// =============================================================================
// Claude
// =============================================================================

// ClaudeConfig configures the Anthropic adapter.
type ClaudeConfig struct {
	BaseConfig `yaml:",inline"`
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// DefaultClaudeConfig returns the Anthropic adapter defaults.
func DefaultClaudeConfig() ClaudeConfig {
	cfg := ClaudeConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "claude-sonnet-4-20250514"
	return cfg
}

// Validate checks the configuration.
func (c *ClaudeConfig) Validate() error {
	return c.validate("claude")
}

// =============================================================================
// OpenAI
// =============================================================================

// OpenAIConfig configures the OpenAI adapter.
type OpenAIConfig struct {
	BaseConfig   `yaml:",inline"`
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`
}

// DefaultOpenAIConfig returns the OpenAI adapter defaults.
func DefaultOpenAIConfig() OpenAIConfig {
	cfg := OpenAIConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "gpt-4o"
	return cfg
}

// Validate checks the configuration.
func (c *OpenAIConfig) Validate() error {
	return c.validate("openai")
}

// =============================================================================
// DeepSeek
// =============================================================================

// DeepSeekBaseURL is the DeepSeek API endpoint. DeepSeek speaks the
// OpenAI wire protocol, so the adapter reuses the OpenAI client with
// this base URL.
const DeepSeekBaseURL = "https://api.deepseek.com"

// DeepSeekConfig configures the DeepSeek adapter.
type DeepSeekConfig struct {
	BaseConfig `yaml:",inline"`
	BaseURL    string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// DefaultDeepSeekConfig returns the DeepSeek adapter defaults.
func DefaultDeepSeekConfig() DeepSeekConfig {
	cfg := DeepSeekConfig{
		BaseConfig: DefaultBaseConfig(),
		BaseURL:    DeepSeekBaseURL,
	}
	cfg.Model = "deepseek-chat"
	return cfg
}

// Validate checks the configuration.
func (c *DeepSeekConfig) Validate() error {
	return c.validate("deepseek")
}

// =============================================================================
// Gemini
// =============================================================================

// GeminiConfig configures the Google Gemini adapter.
type GeminiConfig struct {
	BaseConfig `yaml:",inline"`
}

// DefaultGeminiConfig returns the Gemini adapter defaults.
func DefaultGeminiConfig() GeminiConfig {
	cfg := GeminiConfig{BaseConfig: DefaultBaseConfig()}
	cfg.Model = "gemini-2.0-flash"
	return cfg
}

// Validate checks the configuration.
func (c *GeminiConfig) Validate() error {
	return c.validate("gemini")
}
