package protocol

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/providers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// stubProvider answers completions with canned content keyed by the
// requested action.
type stubProvider struct {
	mu        sync.Mutex
	calls     int
	lastReq   *providers.Request
	failTimes int
	failWith  error
}

func (s *stubProvider) Name() string         { return "stub" }
func (s *stubProvider) DefaultModel() string { return "stub-model" }

func (s *stubProvider) Complete(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	s.lastReq = req

	if s.failTimes > 0 {
		s.failTimes--
		return nil, s.failWith
	}

	var content string
	switch req.Metadata["action"] {
	case "code_generation":
		content = "Generated code content"
	case "reasoning":
		content = "Reasoning and analysis result"
	case "fast_coding":
		content = "Fast coding result"
	default:
		content = "Generic LLM response"
	}

	return &providers.Response{
		Content:    content,
		Model:      req.Model,
		StopReason: providers.StopReasonEndTurn,
		Usage:      providers.Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}, nil
}

func (s *stubProvider) CountTokens(messages []providers.Message) (int, error) {
	return providers.EstimateMessageTokens(messages), nil
}

func (s *stubProvider) SupportsModel(model string) bool { return true }

func (s *stubProvider) ValidateConfig() error { return nil }

func (s *stubProvider) HealthCheck(ctx context.Context) error { return nil }

func (s *stubProvider) Close() error { return nil }

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubProvider) lastRequest() *providers.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReq
}

func newTestRouter(t *testing.T, stub *stubProvider) *Router {
	t.Helper()

	registry := providers.NewRegistry()
	if err := registry.Register(providers.ProviderClaude, stub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fast := &errors.RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	router, err := NewRouter(RouterConfig{
		Registry: registry,
		Policies: map[errors.ErrorTier]*errors.RetryPolicy{
			errors.TierTransient:         fast,
			errors.TierExternalRateLimit: fast,
			errors.TierExternalDegrading: fast,
		},
		Logger: testLogger(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { router.Cache().Close() })

	return router
}

// =============================================================================
// Routing Tests
// =============================================================================

func TestRouterSend(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	resp, err := router.Send(context.Background(), &Request{
		ID:     "req-1",
		Sender: "backend_architect",
		Target: TargetClaude,
		Action: ActionReasoning,
		Prompt: "Design the data layer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Result != "Reasoning and analysis result" {
		t.Errorf("result = %q", resp.Result)
	}
	if resp.Model != "stub-model" {
		t.Errorf("model = %q, want stub-model", resp.Model)
	}
	if resp.Usage.TotalTokens != 30 {
		t.Errorf("total tokens = %d, want 30", resp.Usage.TotalTokens)
	}
	if resp.Cached {
		t.Error("first response should not be cached")
	}
	if resp.Took <= 0 {
		t.Error("expected non-zero latency")
	}
}

func TestRouterUnknownTarget(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	_, err := router.Send(context.Background(), &Request{
		Target: TargetGemini,
		Action: ActionReasoning,
		Prompt: "anything",
	})
	if err == nil {
		t.Fatal("expected error for unregistered target")
	}
	if !stderrors.Is(err, errors.ErrTargetNotRegistered) {
		t.Errorf("error = %v, want ErrTargetNotRegistered", err)
	}
	if errors.GetTier(err) != errors.TierPermanent {
		t.Errorf("tier = %v, want permanent", errors.GetTier(err))
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	req := &Request{Target: TargetClaude, Action: ActionAnalysis, Prompt: "check"}
	if _, err := router.Send(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID == "" {
		t.Error("expected request ID to be assigned")
	}
}

func TestRouterAppliesActionTemperature(t *testing.T) {
	tests := []struct {
		action Action
		want   float64
	}{
		{ActionCodeGeneration, 0.2},
		{ActionFastCoding, 0.1},
		{ActionReasoning, 0.7},
		{ActionGenerateText, 0.7},
		{ActionAnalysis, 0.3},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			stub := &stubProvider{}
			router := newTestRouter(t, stub)

			_, err := router.Send(context.Background(), &Request{
				Target:  TargetClaude,
				Action:  tt.action,
				Prompt:  "p",
				NoCache: true,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			preq := stub.lastRequest()
			if preq.Temperature == nil {
				t.Fatal("expected temperature to be set")
			}
			if *preq.Temperature != tt.want {
				t.Errorf("temperature = %f, want %f", *preq.Temperature, tt.want)
			}
		})
	}
}

func TestRouterModelOverride(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	_, err := router.Send(context.Background(), &Request{
		Target:  TargetClaude,
		Action:  ActionCodeGeneration,
		Prompt:  "p",
		Model:   "claude-3-5-haiku-latest",
		NoCache: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.lastRequest().Model; got != "claude-3-5-haiku-latest" {
		t.Errorf("model = %q, want override", got)
	}

	_, err = router.Send(context.Background(), &Request{
		Target:  TargetClaude,
		Action:  ActionCodeGeneration,
		Prompt:  "p",
		NoCache: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.lastRequest().Model; got != "stub-model" {
		t.Errorf("model = %q, want provider default", got)
	}
}

func TestRouterContentFallback(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	_, err := router.Send(context.Background(), &Request{
		Target:       TargetClaude,
		Action:       ActionAnalysis,
		Content:      "architecture to validate",
		AnalysisType: "architecture_validation",
		NoCache:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	preq := stub.lastRequest()
	if len(preq.Messages) != 1 || preq.Messages[0].Content != "architecture to validate" {
		t.Errorf("messages = %+v, want content as user message", preq.Messages)
	}
	if preq.Metadata["analysis_type"] != "architecture_validation" {
		t.Errorf("analysis_type metadata = %q", preq.Metadata["analysis_type"])
	}
}

func TestRouterPassesSystemPrompt(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	_, err := router.Send(context.Background(), &Request{
		Target:       TargetClaude,
		Action:       ActionReasoning,
		Prompt:       "design middleware",
		SystemPrompt: "You are a FastAPI expert.",
		NoCache:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.lastRequest().SystemPrompt; got != "You are a FastAPI expert." {
		t.Errorf("system prompt = %q", got)
	}
}

func TestRouterTargets(t *testing.T) {
	registry := providers.NewRegistry()
	if err := registry.Register(providers.ProviderOpenAI, &stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := registry.Register(providers.ProviderClaude, &stubProvider{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router, err := NewRouter(RouterConfig{Registry: registry, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer router.Close()

	targets := router.Targets()
	if len(targets) != 2 {
		t.Fatalf("targets = %v, want 2 entries", targets)
	}
	if targets[0] != TargetClaude || targets[1] != TargetOpenAI {
		t.Errorf("targets = %v, want sorted [claude openai]", targets)
	}
}

func TestRouterClose(t *testing.T) {
	router := newTestRouter(t, &stubProvider{})

	if err := router.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// The closed cache serves nothing and stores nothing.
	if _, ok := router.Cache().Get("any"); ok {
		t.Error("closed cache should not serve entries")
	}
}

// =============================================================================
// Cache Tests
// =============================================================================

func TestRouterCachesResponses(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	req := func() *Request {
		return &Request{
			Target: TargetClaude,
			Action: ActionCodeGeneration,
			Prompt: "generate the user model",
		}
	}

	first, err := router.Send(context.Background(), req())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Error("first response should not be cached")
	}

	router.Cache().Wait()

	second, err := router.Send(context.Background(), req())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Error("second response should be served from cache")
	}
	if second.Result != first.Result {
		t.Errorf("cached result = %q, want %q", second.Result, first.Result)
	}
	if stub.callCount() != 1 {
		t.Errorf("provider calls = %d, want 1", stub.callCount())
	}
}

func TestRouterNoCacheBypass(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	for i := 0; i < 2; i++ {
		resp, err := router.Send(context.Background(), &Request{
			Target:  TargetClaude,
			Action:  ActionCodeGeneration,
			Prompt:  "same prompt",
			NoCache: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Cached {
			t.Error("no-cache response should never be cached")
		}
		router.Cache().Wait()
	}

	if stub.callCount() != 2 {
		t.Errorf("provider calls = %d, want 2", stub.callCount())
	}
}

func TestRouterCacheKeyedByModel(t *testing.T) {
	stub := &stubProvider{}
	router := newTestRouter(t, stub)

	send := func(model string) {
		t.Helper()
		_, err := router.Send(context.Background(), &Request{
			Target: TargetClaude,
			Action: ActionCodeGeneration,
			Prompt: "same prompt",
			Model:  model,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		router.Cache().Wait()
	}

	send("claude-a")
	send("claude-b")

	if stub.callCount() != 2 {
		t.Errorf("provider calls = %d, want 2 for distinct models", stub.callCount())
	}
}

// =============================================================================
// Retry Tests
// =============================================================================

func TestRouterRetriesTransientFailures(t *testing.T) {
	stub := &stubProvider{
		failTimes: 2,
		failWith:  fmt.Errorf("read tcp: connection reset by peer"),
	}
	router := newTestRouter(t, stub)

	resp, err := router.Send(context.Background(), &Request{
		Target:  TargetClaude,
		Action:  ActionReasoning,
		Prompt:  "p",
		NoCache: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Result != "Reasoning and analysis result" {
		t.Errorf("result = %q", resp.Result)
	}
	if stub.callCount() != 3 {
		t.Errorf("provider calls = %d, want 3", stub.callCount())
	}
}

func TestRouterDoesNotRetryPermanent(t *testing.T) {
	stub := &stubProvider{
		failTimes: 100,
		failWith:  fmt.Errorf("invalid request: unknown parameter"),
	}
	router := newTestRouter(t, stub)

	_, err := router.Send(context.Background(), &Request{
		Target:  TargetClaude,
		Action:  ActionReasoning,
		Prompt:  "p",
		NoCache: true,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetTier(err) != errors.TierPermanent {
		t.Errorf("tier = %v, want permanent", errors.GetTier(err))
	}
	if stub.callCount() != 1 {
		t.Errorf("provider calls = %d, want 1", stub.callCount())
	}
}

func TestRouterRetriesExhausted(t *testing.T) {
	stub := &stubProvider{
		failTimes: 100,
		failWith:  fmt.Errorf("dial tcp: connection refused"),
	}
	router := newTestRouter(t, stub)

	_, err := router.Send(context.Background(), &Request{
		Target:  TargetClaude,
		Action:  ActionReasoning,
		Prompt:  "p",
		NoCache: true,
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if errors.GetTier(err) != errors.TierTransient {
		t.Errorf("tier = %v, want transient", errors.GetTier(err))
	}
	if stub.callCount() < 2 {
		t.Errorf("provider calls = %d, want retries", stub.callCount())
	}
}

// =============================================================================
// Type Tests
// =============================================================================

func TestParseTarget(t *testing.T) {
	for _, s := range []string{"claude", "openai", "deepseek", "gemini"} {
		if _, err := ParseTarget(s); err != nil {
			t.Errorf("ParseTarget(%q): unexpected error: %v", s, err)
		}
	}
	if _, err := ParseTarget("mistral"); err == nil {
		t.Error("expected error for unknown target")
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"reasoning", "code_generation", "fast_coding", "generate_text", "analysis"} {
		if _, err := ParseAction(s); err != nil {
			t.Errorf("ParseAction(%q): unexpected error: %v", s, err)
		}
	}
	if _, err := ParseAction("translate"); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestNewRequest(t *testing.T) {
	req := NewRequest("fastapi_generator", TargetOpenAI, ActionCodeGeneration, "generate routes")
	if req.ID == "" {
		t.Error("expected generated request ID")
	}
	if req.Sender != "fastapi_generator" || req.Target != TargetOpenAI {
		t.Errorf("unexpected request fields: %+v", req)
	}
}
