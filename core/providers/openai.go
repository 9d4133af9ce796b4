package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// OpenAIProvider adapts the OpenAI Responses API to the Provider
// interface.
type OpenAIProvider struct {
	cfg    OpenAIConfig
	client *openai.Client
	logger *slog.Logger
}

var openAIModelPrefixes = []string{"gpt-", "o1", "o3", "o4", "chatgpt"}

// NewOpenAIProvider creates an OpenAI-backed provider.
func NewOpenAIProvider(cfg OpenAIConfig, logger *slog.Logger) (*OpenAIProvider, error) {
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
	if cfg.Organization != "" {
		opts = append(opts, option.WithHeader("OpenAI-Organization", cfg.Organization))
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		cfg:    cfg,
		client: &client,
		logger: logger.With("provider", "openai"),
	}, nil
}

// Name returns the provider family name.
func (p *OpenAIProvider) Name() string { return string(ProviderOpenAI) }

// DefaultModel returns the configured default model.
func (p *OpenAIProvider) DefaultModel() string { return p.cfg.Model }

// SupportsModel reports whether the model is an OpenAI model.
func (p *OpenAIProvider) SupportsModel(model string) bool {
	for _, prefix := range openAIModelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// ValidateConfig checks the adapter configuration.
func (p *OpenAIProvider) ValidateConfig() error { return p.cfg.Validate() }

// CountTokens estimates the token count of the messages.
func (p *OpenAIProvider) CountTokens(messages []Message) (int, error) {
	return EstimateMessageTokens(messages), nil
}

// Complete executes a completion request against the Responses API.
func (p *OpenAIProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	result, err := p.client.Responses.New(ctx, p.buildParams(req))
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}

	resp := p.convertResponse(result)
	p.logger.Debug("completion finished",
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)
	return resp, nil
}

func (p *OpenAIProvider) buildParams(req *Request) responses.ResponseNewParams {
	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: p.convertMessages(req.Messages, req.SystemPrompt),
		},
		MaxOutputTokens: openai.Int(int64(maxTokens)),
	}

	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	} else if p.cfg.Temperature > 0 {
		params.Temperature = openai.Float(p.cfg.Temperature)
	}
	if req.TopP != nil {
		params.TopP = openai.Float(*req.TopP)
	}

	return params
}

func (p *OpenAIProvider) convertMessages(messages []Message, systemPrompt string) responses.ResponseInputParam {
	result := make(responses.ResponseInputParam, 0, len(messages)+1)

	if systemPrompt != "" {
		result = append(result, responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem))
	}

	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			result = append(result, responses.ResponseInputItemParamOfMessage(msg.Content, responses.EasyInputMessageRoleSystem))
		case RoleAssistant:
			result = append(result, responses.ResponseInputItemParamOfMessage(msg.Content, responses.EasyInputMessageRoleAssistant))
		default:
			result = append(result, responses.ResponseInputItemParamOfMessage(msg.Content, responses.EasyInputMessageRoleUser))
		}
	}

	return result
}

func (p *OpenAIProvider) convertResponse(result *responses.Response) *Response {
	if result == nil {
		return &Response{StopReason: StopReasonError}
	}

	return &Response{
		Content:    result.OutputText(),
		Model:      string(result.Model),
		StopReason: p.convertStopReason(*result),
		Usage: Usage{
			InputTokens:  int(result.Usage.InputTokens),
			OutputTokens: int(result.Usage.OutputTokens),
			TotalTokens:  int(result.Usage.TotalTokens),
		},
		ProviderMetadata: map[string]any{
			"id": result.ID,
		},
	}
}

func (p *OpenAIProvider) convertStopReason(result responses.Response) StopReason {
	if result.IncompleteDetails.Reason != "" {
		switch result.IncompleteDetails.Reason {
		case "max_output_tokens":
			return StopReasonMaxTokens
		case "content_filter":
			return StopReasonError
		default:
			return StopReasonEndTurn
		}
	}
	if result.Error.Message != "" {
		return StopReasonError
	}
	return StopReasonEndTurn
}

// HealthCheck performs a minimal live request.
func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	_, err := p.Complete(ctx, healthCheckRequest())
	return err
}

// Close releases adapter resources.
func (p *OpenAIProvider) Close() error { return nil }
