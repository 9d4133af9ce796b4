package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeProvider adapts the Anthropic Messages API to the Provider
// interface.
type ClaudeProvider struct {
	cfg    ClaudeConfig
	client *anthropic.Client
	logger *slog.Logger
}

// NewClaudeProvider creates an Anthropic-backed provider.
func NewClaudeProvider(cfg ClaudeConfig, logger *slog.Logger) (*ClaudeProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	return &ClaudeProvider{
		cfg:    cfg,
		client: &client,
		logger: logger.With("provider", "claude"),
	}, nil
}

// Name returns the provider family name.
func (p *ClaudeProvider) Name() string { return string(ProviderClaude) }

// DefaultModel returns the configured default model.
func (p *ClaudeProvider) DefaultModel() string { return p.cfg.Model }

// SupportsModel reports whether the model is a Claude model.
func (p *ClaudeProvider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "claude")
}

// ValidateConfig checks the adapter configuration.
func (p *ClaudeProvider) ValidateConfig() error { return p.cfg.Validate() }

// CountTokens estimates the token count of the messages.
func (p *ClaudeProvider) CountTokens(messages []Message) (int, error) {
	return EstimateMessageTokens(messages), nil
}

// Complete executes a completion request against the Messages API.
func (p *ClaudeProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	params, err := p.buildParams(req)
	if err != nil {
		return nil, err
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("claude completion: %w", err)
	}

	resp := p.convertResponse(msg)
	p.logger.Debug("completion finished",
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)
	return resp, nil
}

func (p *ClaudeProvider) buildParams(req *Request) (anthropic.MessageNewParams, error) {
	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}

	var messages []anthropic.MessageParam
	var systemParts []string
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			// The Messages API takes system text out of band.
			systemParts = append(systemParts, m.Content)
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	if len(messages) == 0 {
		return anthropic.MessageNewParams{}, fmt.Errorf("claude completion: no user messages")
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}

	system := req.SystemPrompt
	if len(systemParts) > 0 {
		if system != "" {
			systemParts = append([]string{system}, systemParts...)
		}
		system = strings.Join(systemParts, "\n\n")
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	} else if p.cfg.Temperature > 0 {
		params.Temperature = anthropic.Float(p.cfg.Temperature)
	}
	if req.TopP != nil {
		params.TopP = anthropic.Float(*req.TopP)
	}
	if len(req.StopSequences) > 0 {
		params.StopSequences = req.StopSequences
	}

	return params, nil
}

func (p *ClaudeProvider) convertResponse(msg *anthropic.Message) *Response {
	var content strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(text.Text)
		}
	}

	usage := Usage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
	}
	usage.TotalTokens = usage.InputTokens + usage.OutputTokens

	return &Response{
		Content:    content.String(),
		Model:      string(msg.Model),
		StopReason: convertClaudeStopReason(msg.StopReason),
		Usage:      usage,
		ProviderMetadata: map[string]any{
			"message_id": msg.ID,
		},
	}
}

func convertClaudeStopReason(reason anthropic.StopReason) StopReason {
	switch reason {
	case anthropic.StopReasonMaxTokens:
		return StopReasonMaxTokens
	case anthropic.StopReasonStopSequence:
		return StopReasonStopSequence
	case anthropic.StopReasonToolUse:
		return StopReasonToolUse
	default:
		return StopReasonEndTurn
	}
}

// HealthCheck performs a minimal live request.
func (p *ClaudeProvider) HealthCheck(ctx context.Context) error {
	_, err := p.Complete(ctx, healthCheckRequest())
	return err
}

// Close releases adapter resources.
func (p *ClaudeProvider) Close() error { return nil }
