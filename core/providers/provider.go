// Package providers implements the LLM provider adapters used by the
// request router: Anthropic Claude, OpenAI, DeepSeek, and Google
// Gemini behind a common completion interface, plus a registry for
// resolving adapters by provider type.
package providers

import (
	"context"
)

// ProviderType identifies a provider family. The values double as
// routing targets.
type ProviderType string

const (
	ProviderClaude   ProviderType = "claude"
	ProviderOpenAI   ProviderType = "openai"
	ProviderDeepSeek ProviderType = "deepseek"
	ProviderGemini   ProviderType = "gemini"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// StopReason describes why a completion ended.
type StopReason string

const (
	StopReasonEndTurn      StopReason = "end_turn"
	StopReasonMaxTokens    StopReason = "max_tokens"
	StopReasonStopSequence StopReason = "stop_sequence"
	StopReasonToolUse      StopReason = "tool_use"
	StopReasonError        StopReason = "error"
)

// Message is a single conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user-authored message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant-authored message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Request is a provider-neutral completion request. Zero values defer
// to the adapter's configured defaults; Temperature and TopP are
// pointers so zero is distinguishable from unset.
type Request struct {
	Messages      []Message         `json:"messages"`
	Model         string            `json:"model,omitempty"`
	MaxTokens     int               `json:"max_tokens,omitempty"`
	Temperature   *float64          `json:"temperature,omitempty"`
	TopP          *float64          `json:"top_p,omitempty"`
	StopSequences []string          `json:"stop_sequences,omitempty"`
	SystemPrompt  string            `json:"system_prompt,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Usage reports token consumption for a completion.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Response is a provider-neutral completion response.
type Response struct {
	Content          string         `json:"content"`
	Model            string         `json:"model"`
	StopReason       StopReason     `json:"stop_reason"`
	Usage            Usage          `json:"usage"`
	ProviderMetadata map[string]any `json:"provider_metadata,omitempty"`
}

// Provider is the adapter contract the router depends on. Adapters
// translate between the neutral request shape and their SDK, and own
// their client lifecycle.
type Provider interface {
	// Name returns the provider family name.
	Name() string

	// Complete executes a completion request.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// CountTokens estimates the token count of a message list without
	// a network round trip.
	CountTokens(messages []Message) (int, error)

	// DefaultModel returns the model used when a request names none.
	DefaultModel() string

	// SupportsModel reports whether the model belongs to this
	// provider's family.
	SupportsModel(model string) bool

	// ValidateConfig checks the adapter's configuration.
	ValidateConfig() error

	// HealthCheck performs a minimal live request.
	HealthCheck(ctx context.Context) error

	// Close releases any held resources.
	Close() error
}

// EstimateTokens approximates the token count of a text as one token
// per four bytes. Good enough for budgeting and cache sizing; exact
// counts come back in the response usage.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := (len(text) + 3) / 4
	if n < 1 {
		n = 1
	}
	return n
}

// EstimateMessageTokens estimates tokens across a message list with a
// small per-message framing overhead.
func EstimateMessageTokens(messages []Message) int {
	total := 0
	for _, m := range messages {
		total += EstimateTokens(m.Content) + 4
	}
	return total
}

func healthCheckRequest() *Request {
	return &Request{
		Messages:  []Message{UserMessage("ping")},
		MaxTokens: 1,
	}
}
