// Package protocol routes generation requests from agents to LLM
// providers. A request names a target provider and an action; the
// router resolves the adapter, applies per-action sampling settings,
// consults the response cache, and retries failures according to
// their error tier.
package protocol

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/genesis-engine/genesis-backend/core/providers"
)

// Target names the provider a request is routed to.
type Target string

const (
	TargetClaude   Target = "claude"
	TargetOpenAI   Target = "openai"
	TargetDeepSeek Target = "deepseek"
	TargetGemini   Target = "gemini"
)

var targets = map[Target]bool{
	TargetClaude:   true,
	TargetOpenAI:   true,
	TargetDeepSeek: true,
	TargetGemini:   true,
}

// ParseTarget converts a string into a Target.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(s))
	if !targets[t] {
		return "", fmt.Errorf("unknown target: %q", s)
	}
	return t, nil
}

func (t Target) String() string { return string(t) }

// ProviderType maps the target onto its registry key.
func (t Target) ProviderType() providers.ProviderType {
	return providers.ProviderType(t)
}

// Action names the kind of work a request asks for. The action
// selects the sampling temperature.
type Action string

const (
	ActionReasoning      Action = "reasoning"
	ActionCodeGeneration Action = "code_generation"
	ActionFastCoding     Action = "fast_coding"
	ActionGenerateText   Action = "generate_text"
	ActionAnalysis       Action = "analysis"
)

var actions = map[Action]bool{
	ActionReasoning:      true,
	ActionCodeGeneration: true,
	ActionFastCoding:     true,
	ActionGenerateText:   true,
	ActionAnalysis:       true,
}

// ParseAction converts a string into an Action.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ToLower(s))
	if !actions[a] {
		return "", fmt.Errorf("unknown action: %q", s)
	}
	return a, nil
}

func (a Action) String() string { return string(a) }

// Temperature returns the sampling temperature for the action.
// Code-producing actions run cold; reasoning and text run warmer.
func (a Action) Temperature() float64 {
	switch a {
	case ActionCodeGeneration:
		return 0.2
	case ActionFastCoding:
		return 0.1
	case ActionAnalysis:
		return 0.3
	default:
		return 0.7
	}
}

// Request is one routed generation request.
type Request struct {
	ID           string `json:"id"`
	Sender       string `json:"sender"`
	Target       Target `json:"target"`
	Action       Action `json:"action"`
	Prompt       string `json:"prompt"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	Language     string `json:"language,omitempty"`
	Framework    string `json:"framework,omitempty"`
	Content      string `json:"content,omitempty"`
	AnalysisType string `json:"analysis_type,omitempty"`
	Model        string `json:"model,omitempty"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
	NoCache      bool   `json:"no_cache,omitempty"`
}

// NewRequest creates a request with a generated ID.
func NewRequest(sender string, target Target, action Action, prompt string) *Request {
	return &Request{
		ID:     uuid.NewString(),
		Sender: sender,
		Target: target,
		Action: action,
		Prompt: prompt,
	}
}

// EffectivePrompt returns the text sent as the user message. Analysis
// requests carry their input in Content instead of Prompt.
func (r *Request) EffectivePrompt() string {
	if r.Prompt != "" {
		return r.Prompt
	}
	return r.Content
}

// Response is the routed result of a generation request.
type Response struct {
	Result string          `json:"result"`
	Model  string          `json:"model"`
	Usage  providers.Usage `json:"usage"`
	Took   time.Duration   `json:"took"`
	Cached bool            `json:"cached"`
}
