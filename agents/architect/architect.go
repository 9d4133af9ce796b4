package architect

import (
	"context"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Backend Architect Agent
// =============================================================================

// Architect is the backend architecture design agent. It analyzes
// requirements, designs API surfaces, data models, and service layers,
// selects technologies, and validates complete architecture drafts.
// Each task routes a design prompt to the provider best suited for it
// and folds the answer into a structured summary.
type Architect struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the Architect agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a Backend Architect agent wired to the given sender.
func New(sender protocol.Sender, cfg Config) (*Architect, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	a := &Architect{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}
	a.SetGenericLabel("backend architecture")

	for _, capability := range Capabilities {
		a.AddCapability(capability)
	}

	a.RegisterHandler(TaskAnalyzeRequirements, a.analyzeRequirements)
	a.RegisterHandler(TaskDesignAPI, a.designAPI)
	a.RegisterHandler(TaskDesignDataModels, a.designDataModels)
	a.RegisterHandler(TaskSelectTechnologies, a.selectTechnologies)
	a.RegisterHandler(TaskDesignServices, a.designServices)
	a.RegisterHandler(TaskValidateArchitecture, a.validateArchitecture)

	return a, nil
}

// systemPrompt resolves the system prompt for a task, preferring the
// configured override.
func (a *Architect) systemPrompt(taskDefault string) string {
	if a.config.SystemPrompt != "" {
		return a.config.SystemPrompt
	}
	return taskDefault
}

// analyzeRequirements analyzes requirements specific to backend
// architecture: storage, API, auth, performance, and security needs.
func (a *Architect) analyzeRequirements(ctx context.Context, params map[string]any) (map[string]any, error) {
	description := agent.StringParam(params, "description")
	features := agent.StringsParam(params, "features")
	constraints := agent.StringsParam(params, "constraints")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		analyzeRequirementsPrompt(description, features, constraints))
	req.SystemPrompt = a.systemPrompt(analyzeSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	analysis := requirementsAnalysis(resp.Result, features)

	return map[string]any{
		"backend_requirements":  analysis,
		"complexity_assessment": assessComplexity(analysis),
		"recommended_patterns":  recommendPatterns(analysis),
		"technology_hints":      technologyHints(analysis),
		"analysis_metadata": map[string]any{
			"analyzed_at": time.Now().UTC().Format(time.RFC3339),
			"analyzer":    a.Name(),
		},
	}, nil
}

// designAPI designs the REST API architecture.
func (a *Architect) designAPI(ctx context.Context, params map[string]any) (map[string]any, error) {
	requirements := agent.MapParam(params, "requirements")
	entities := agent.SliceParam(params, "entities")

	req := protocol.NewRequest(a.ID(), protocol.TargetOpenAI, protocol.ActionGenerateText,
		designAPIPrompt(requirements, entities))
	req.SystemPrompt = a.systemPrompt(designAPISystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"api_specification":     apiDesign(resp.Result),
		"endpoint_summary":      endpointsSummary(resp.Result),
		"authentication_design": authDesign(resp.Result),
		"design_metadata":       a.designMetadata(),
	}, nil
}

// designDataModels designs entity models and the database schema.
func (a *Architect) designDataModels(ctx context.Context, params map[string]any) (map[string]any, error) {
	requirements := agent.MapParam(params, "requirements")
	apiDesignParam := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		designDataModelsPrompt(requirements, apiDesignParam))
	req.SystemPrompt = a.systemPrompt(designModelsSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"data_models":     dataModels(resp.Result),
		"relationships":   relationships(resp.Result),
		"database_schema": databaseSchema(resp.Result),
		"migration_plan":  migrationPlan(resp.Result),
		"design_metadata": a.designMetadata(),
	}, nil
}

// selectTechnologies evaluates and recommends the backend stack.
func (a *Architect) selectTechnologies(ctx context.Context, params map[string]any) (map[string]any, error) {
	requirements := agent.MapParam(params, "requirements")
	constraints := agent.StringsParam(params, "constraints")
	preferences := agent.MapParam(params, "preferences")

	req := protocol.NewRequest(a.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		selectTechnologiesPrompt(requirements, constraints, preferences))
	req.Language = "analysis"

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"recommended_stack": technologyRecommendations(resp.Result),
		"alternatives":      technologyAlternatives(resp.Result),
		"rationale":         technologyRationale(resp.Result),
		"selection_metadata": map[string]any{
			"selected_at": time.Now().UTC().Format(time.RFC3339),
			"selector":    a.Name(),
		},
	}, nil
}

// designServices designs the service layer architecture.
func (a *Architect) designServices(ctx context.Context, params map[string]any) (map[string]any, error) {
	dataModelsParam := agent.MapParam(params, "data_models")
	apiDesignParam := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		designServicesPrompt(dataModelsParam, apiDesignParam))
	req.SystemPrompt = a.systemPrompt(designServicesSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"service_architecture": serviceArchitecture(resp.Result),
		"patterns_used":        architecturalPatterns(resp.Result),
		"design_principles":    designPrinciples(resp.Result),
		"design_metadata":      a.designMetadata(),
	}, nil
}

// validateArchitecture checks a complete architecture draft for
// consistency, security, and scalability issues.
func (a *Architect) validateArchitecture(ctx context.Context, params map[string]any) (map[string]any, error) {
	architecture := agent.MapParam(params, "architecture")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionAnalysis, "")
	req.Content = validateArchitecturePrompt(architecture)
	req.AnalysisType = "architecture_validation"

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"validation_result": validationResult(resp.Result),
		"issues_found":      validationIssues(resp.Result),
		"recommendations":   validationRecommendations(resp.Result),
		"validation_metadata": map[string]any{
			"validated_at": time.Now().UTC().Format(time.RFC3339),
			"validator":    a.Name(),
		},
	}, nil
}

func (a *Architect) designMetadata() map[string]any {
	return map[string]any{
		"designed_at": time.Now().UTC().Format(time.RFC3339),
		"designer":    a.Name(),
	}
}
