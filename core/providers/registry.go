package providers

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry manages multiple provider instances and provides
// a unified interface for provider selection and routing
type Registry struct {
	mu sync.RWMutex

	providers map[ProviderType]Provider
	default_  ProviderType
}

// NewRegistry creates a new provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderType]Provider),
	}
}

// Register adds a provider to the registry
func (r *Registry) Register(providerType ProviderType, provider Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := provider.ValidateConfig(); err != nil {
		return fmt.Errorf("invalid provider config for %s: %w", providerType, err)
	}

	r.providers[providerType] = provider

	// Set as default if first provider
	if len(r.providers) == 1 {
		r.default_ = providerType
	}

	return nil
}

// RegisterClaude creates and registers an Anthropic provider
func (r *Registry) RegisterClaude(config ClaudeConfig, logger *slog.Logger) error {
	provider, err := NewClaudeProvider(config, logger)
	if err != nil {
		return err
	}
	return r.Register(ProviderClaude, provider)
}

// RegisterOpenAI creates and registers an OpenAI provider
func (r *Registry) RegisterOpenAI(config OpenAIConfig, logger *slog.Logger) error {
	provider, err := NewOpenAIProvider(config, logger)
	if err != nil {
		return err
	}
	return r.Register(ProviderOpenAI, provider)
}

// RegisterDeepSeek creates and registers a DeepSeek provider
func (r *Registry) RegisterDeepSeek(config DeepSeekConfig, logger *slog.Logger) error {
	provider, err := NewDeepSeekProvider(config, logger)
	if err != nil {
		return err
	}
	return r.Register(ProviderDeepSeek, provider)
}

// RegisterGemini creates and registers a Gemini provider
func (r *Registry) RegisterGemini(config GeminiConfig, logger *slog.Logger) error {
	provider, err := NewGeminiProvider(config, logger)
	if err != nil {
		return err
	}
	return r.Register(ProviderGemini, provider)
}

// Get returns a provider by type
func (r *Registry) Get(providerType ProviderType) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[providerType]
	if !ok {
		return nil, fmt.Errorf("provider not registered: %s", providerType)
	}
	return provider, nil
}

// Default returns the default provider
func (r *Registry) Default() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.default_ == "" {
		return nil, fmt.Errorf("no default provider set")
	}
	return r.providers[r.default_], nil
}

// SetDefault sets the default provider
func (r *Registry) SetDefault(providerType ProviderType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[providerType]; !ok {
		return fmt.Errorf("provider not registered: %s", providerType)
	}
	r.default_ = providerType
	return nil
}

// Available returns all registered provider types
func (r *Registry) Available() []ProviderType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]ProviderType, 0, len(r.providers))
	for t := range r.providers {
		types = append(types, t)
	}
	return types
}

// Has checks if a provider type is registered
func (r *Registry) Has(providerType ProviderType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[providerType]
	return ok
}

// GetForModel returns the first provider that supports the given model
func (r *Registry) GetForModel(model string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, provider := range r.providers {
		if provider.SupportsModel(model) {
			return provider, nil
		}
	}
	return nil, fmt.Errorf("no provider supports model: %s", model)
}

// Close closes all registered providers
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for name, provider := range r.providers {
		if err := provider.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing providers: %v", errs)
	}
	return nil
}

// RegistryBuilder provides a fluent interface for building a registry
type RegistryBuilder struct {
	registry *Registry
	logger   *slog.Logger
	errors   []error
}

// NewRegistryBuilder creates a new builder
func NewRegistryBuilder(logger *slog.Logger) *RegistryBuilder {
	return &RegistryBuilder{
		registry: NewRegistry(),
		logger:   logger,
	}
}

// WithClaude adds an Anthropic provider
func (b *RegistryBuilder) WithClaude(config ClaudeConfig) *RegistryBuilder {
	if err := b.registry.RegisterClaude(config, b.logger); err != nil {
		b.errors = append(b.errors, fmt.Errorf("claude: %w", err))
	}
	return b
}

// WithOpenAI adds an OpenAI provider
func (b *RegistryBuilder) WithOpenAI(config OpenAIConfig) *RegistryBuilder {
	if err := b.registry.RegisterOpenAI(config, b.logger); err != nil {
		b.errors = append(b.errors, fmt.Errorf("openai: %w", err))
	}
	return b
}

// WithDeepSeek adds a DeepSeek provider
func (b *RegistryBuilder) WithDeepSeek(config DeepSeekConfig) *RegistryBuilder {
	if err := b.registry.RegisterDeepSeek(config, b.logger); err != nil {
		b.errors = append(b.errors, fmt.Errorf("deepseek: %w", err))
	}
	return b
}

// WithGemini adds a Gemini provider
func (b *RegistryBuilder) WithGemini(config GeminiConfig) *RegistryBuilder {
	if err := b.registry.RegisterGemini(config, b.logger); err != nil {
		b.errors = append(b.errors, fmt.Errorf("gemini: %w", err))
	}
	return b
}

// WithDefault sets the default provider
func (b *RegistryBuilder) WithDefault(providerType ProviderType) *RegistryBuilder {
	if err := b.registry.SetDefault(providerType); err != nil {
		b.errors = append(b.errors, fmt.Errorf("default: %w", err))
	}
	return b
}

// Build returns the configured registry
func (b *RegistryBuilder) Build() (*Registry, error) {
	if len(b.errors) > 0 {
		return nil, fmt.Errorf("registry build errors: %v", b.errors)
	}
	return b.registry, nil
}

// MustBuild returns the registry or panics on error
func (b *RegistryBuilder) MustBuild() *Registry {
	registry, err := b.Build()
	if err != nil {
		panic(err)
	}
	return registry
}
