package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/providers"
)

// Sender dispatches protocol requests. Agents depend on this interface
// so tests can substitute a canned implementation.
type Sender interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// RouterConfig configures the request router.
type RouterConfig struct {
	// Registry resolves targets to provider adapters. Required.
	Registry *providers.Registry

	// Cache holds routed responses. Nil builds a default cache.
	Cache *ResponseCache

	// Policies overrides the per-tier retry policies.
	Policies map[errors.ErrorTier]*errors.RetryPolicy

	// Logger for routing events. Nil falls back to slog.Default.
	Logger *slog.Logger
}

// Router sends requests to provider adapters with caching and tiered
// retry. It implements Sender.
type Router struct {
	registry   *providers.Registry
	cache      *ResponseCache
	classifier *errors.ErrorClassifier
	executor   *errors.RetryExecutor
	logger     *slog.Logger
}

// NewRouter creates a request router.
func NewRouter(cfg RouterConfig) (*Router, error) {
	if cfg.Registry == nil {
		return nil, fmt.Errorf("router requires a provider registry")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cache := cfg.Cache
	if cache == nil {
		var err error
		cache, err = NewResponseCache(nil)
		if err != nil {
			return nil, fmt.Errorf("create response cache: %w", err)
		}
	}

	return &Router{
		registry:   cfg.Registry,
		cache:      cache,
		classifier: errors.NewErrorClassifier(),
		executor:   errors.NewRetryExecutor(cfg.Policies),
		logger:     logger.With("component", "protocol"),
	}, nil
}

// Cache returns the router's response cache.
func (r *Router) Cache() *ResponseCache {
	return r.cache
}

// Targets returns the targets with a registered provider, sorted.
func (r *Router) Targets() []Target {
	available := r.registry.Available()
	targets := make([]Target, 0, len(available))
	for _, pt := range available {
		targets = append(targets, Target(pt))
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// Close releases the response cache and all registered providers.
func (r *Router) Close() error {
	r.cache.Close()
	return r.registry.Close()
}

// Send routes a request to its target provider. Responses for
// identical prompts are served from cache; failures are retried
// according to their classified error tier.
func (r *Router) Send(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	provider, err := r.registry.Get(req.Target.ProviderType())
	if err != nil {
		return nil, errors.WrapWithTier(errors.TierPermanent,
			fmt.Sprintf("route %s request", req.Target), errors.ErrTargetNotRegistered)
	}

	model := req.Model
	if model == "" {
		model = provider.DefaultModel()
	}

	var key string
	if !req.NoCache {
		key = r.cache.Key(req.Target, req.Action, model, req.EffectivePrompt(), req.SystemPrompt)
		if resp, ok := r.cache.Get(key); ok {
			resp.Took = time.Since(start)
			r.logger.Debug("cache hit",
				"request_id", req.ID,
				"target", req.Target,
				"action", req.Action)
			return resp, nil
		}
	}

	presp, err := r.completeWithRetry(ctx, provider, r.buildProviderRequest(req, model), req)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Result: presp.Content,
		Model:  presp.Model,
		Usage:  presp.Usage,
		Took:   time.Since(start),
	}

	if !req.NoCache {
		r.cache.Put(key, resp)
	}

	r.logger.Info("request routed",
		"request_id", req.ID,
		"sender", req.Sender,
		"target", req.Target,
		"action", req.Action,
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
		"took", resp.Took)

	return resp, nil
}

func (r *Router) buildProviderRequest(req *Request, model string) *providers.Request {
	temp := req.Action.Temperature()
	meta := map[string]string{
		"request_id": req.ID,
		"sender":     req.Sender,
		"action":     string(req.Action),
	}
	if req.AnalysisType != "" {
		meta["analysis_type"] = req.AnalysisType
	}
	return &providers.Request{
		Messages:     []providers.Message{providers.UserMessage(req.EffectivePrompt())},
		Model:        model,
		MaxTokens:    req.MaxTokens,
		Temperature:  &temp,
		SystemPrompt: req.SystemPrompt,
		Metadata:     meta,
	}
}

func (r *Router) completeWithRetry(ctx context.Context, provider providers.Provider, preq *providers.Request, req *Request) (*providers.Response, error) {
	presp, err := provider.Complete(ctx, preq)
	if err == nil {
		return presp, nil
	}

	tier := r.classifier.Classify(err)
	wrapped := errors.WrapWithTier(tier,
		fmt.Sprintf("%s %s request failed", req.Target, req.Action), err)
	if !errors.IsRetryable(wrapped) {
		return nil, wrapped
	}

	r.logger.Warn("request failed, retrying",
		"request_id", req.ID,
		"target", req.Target,
		"tier", tier.String(),
		"error", err)

	retryErr := r.executor.Execute(ctx, tier, func() error {
		var cerr error
		presp, cerr = provider.Complete(ctx, preq)
		return cerr
	})
	if retryErr != nil {
		return nil, errors.WrapWithTier(tier,
			fmt.Sprintf("%s %s request failed after retries", req.Target, req.Action), retryErr)
	}

	return presp, nil
}
