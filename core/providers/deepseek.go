package providers

import (
	"context"
	"log/slog"
	"strings"
)

// DeepSeekProvider adapts the DeepSeek API to the Provider interface.
// DeepSeek serves the OpenAI wire protocol, so the adapter wraps the
// OpenAI client pointed at the DeepSeek endpoint.
type DeepSeekProvider struct {
	cfg   DeepSeekConfig
	inner *OpenAIProvider
}

// NewDeepSeekProvider creates a DeepSeek-backed provider.
func NewDeepSeekProvider(cfg DeepSeekConfig, logger *slog.Logger) (*DeepSeekProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DeepSeekBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		BaseConfig: cfg.BaseConfig,
		BaseURL:    cfg.BaseURL,
	}, logger)
	if err != nil {
		return nil, err
	}
	inner.logger = logger.With("provider", "deepseek")

	return &DeepSeekProvider{cfg: cfg, inner: inner}, nil
}

// Name returns the provider family name.
func (p *DeepSeekProvider) Name() string { return string(ProviderDeepSeek) }

// DefaultModel returns the configured default model.
func (p *DeepSeekProvider) DefaultModel() string { return p.cfg.Model }

// SupportsModel reports whether the model is a DeepSeek model.
func (p *DeepSeekProvider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "deepseek")
}

// ValidateConfig checks the adapter configuration.
func (p *DeepSeekProvider) ValidateConfig() error { return p.cfg.Validate() }

// CountTokens estimates the token count of the messages.
func (p *DeepSeekProvider) CountTokens(messages []Message) (int, error) {
	return EstimateMessageTokens(messages), nil
}

// Complete executes a completion request via the wrapped client.
func (p *DeepSeekProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	return p.inner.Complete(ctx, req)
}

// HealthCheck performs a minimal live request.
func (p *DeepSeekProvider) HealthCheck(ctx context.Context) error {
	_, err := p.Complete(ctx, healthCheckRequest())
	return err
}

// Close releases adapter resources.
func (p *DeepSeekProvider) Close() error { return p.inner.Close() }
