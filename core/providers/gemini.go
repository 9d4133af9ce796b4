package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider adapts the Google Gemini API to the Provider
// interface.
type GeminiProvider struct {
	cfg    GeminiConfig
	client *genai.Client
	logger *slog.Logger
}

// NewGeminiProvider creates a Gemini-backed provider.
func NewGeminiProvider(cfg GeminiConfig, logger *slog.Logger) (*GeminiProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		cfg:    cfg,
		client: client,
		logger: logger.With("provider", "gemini"),
	}, nil
}

// Name returns the provider family name.
func (p *GeminiProvider) Name() string { return string(ProviderGemini) }

// DefaultModel returns the configured default model.
func (p *GeminiProvider) DefaultModel() string { return p.cfg.Model }

// SupportsModel reports whether the model is a Gemini model.
func (p *GeminiProvider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "gemini")
}

// ValidateConfig checks the adapter configuration.
func (p *GeminiProvider) ValidateConfig() error { return p.cfg.Validate() }

// CountTokens estimates the token count of the messages.
func (p *GeminiProvider) CountTokens(messages []Message) (int, error) {
	return EstimateMessageTokens(messages), nil
}

// Complete executes a completion request against the Gemini API.
func (p *GeminiProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	model := req.Model
	if model == "" {
		model = p.cfg.Model
	}

	contents, config := p.buildRequest(req)
	result, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini completion: %w", err)
	}

	resp := p.convertResponse(model, result)
	p.logger.Debug("completion finished",
		"model", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)
	return resp, nil
}

func (p *GeminiProvider) buildRequest(req *Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}

	var contents []*genai.Content
	var systemParts []string
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			systemParts = append(systemParts, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if req.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*req.Temperature))
	} else if p.cfg.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(p.cfg.Temperature))
	}
	if req.TopP != nil {
		config.TopP = genai.Ptr(float32(*req.TopP))
	}
	if len(req.StopSequences) > 0 {
		config.StopSequences = req.StopSequences
	}

	system := req.SystemPrompt
	if len(systemParts) > 0 {
		if system != "" {
			systemParts = append([]string{system}, systemParts...)
		}
		system = strings.Join(systemParts, "\n\n")
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	return contents, config
}

func (p *GeminiProvider) convertResponse(model string, result *genai.GenerateContentResponse) *Response {
	resp := &Response{
		Content:    result.Text(),
		Model:      model,
		StopReason: StopReasonEndTurn,
	}

	if len(result.Candidates) > 0 {
		switch result.Candidates[0].FinishReason {
		case genai.FinishReasonMaxTokens:
			resp.StopReason = StopReasonMaxTokens
		case genai.FinishReasonStop:
			resp.StopReason = StopReasonEndTurn
		}
	}

	if result.UsageMetadata != nil {
		resp.Usage = Usage{
			InputTokens:  int(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp
}

// HealthCheck performs a minimal live request.
func (p *GeminiProvider) HealthCheck(ctx context.Context) error {
	_, err := p.Complete(ctx, healthCheckRequest())
	return err
}

// Close releases adapter resources.
func (p *GeminiProvider) Close() error { return nil }
