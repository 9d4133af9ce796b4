package fastapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// FastAPI Generator Agent
// =============================================================================

// FastAPI generates FastAPI backend code: the application entry point,
// routers, Pydantic schemas, middleware, authentication, SQLAlchemy
// models, and dependency functions. Code-producing tasks route to the
// fast code targets; design-heavy tasks route to claude.
type FastAPI struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the FastAPI agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a FastAPI Generator agent wired to the given sender.
func New(sender protocol.Sender, cfg Config) (*FastAPI, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	f := &FastAPI{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}
	f.SetGenericLabel("FastAPI")
	f.SetResultMetadata("framework", "fastapi")

	for _, capability := range Capabilities {
		f.AddCapability(capability)
	}

	f.RegisterHandler(TaskGenerateApp, f.generateApplication)
	f.RegisterHandler(TaskGenerateRoutes, f.generateRoutes)
	f.RegisterHandler(TaskGenerateSchemas, f.generateSchemas)
	f.RegisterHandler(TaskGenerateMiddleware, f.generateMiddleware)
	f.RegisterHandler(TaskGenerateAuth, f.generateAuthentication)
	f.RegisterHandler(TaskGenerateModels, f.generateModels)
	f.RegisterHandler(TaskGenerateDependencies, f.generateDependencies)

	return f, nil
}

func (f *FastAPI) systemPrompt(taskDefault string) string {
	if f.config.SystemPrompt != "" {
		return f.config.SystemPrompt
	}
	return taskDefault
}

// generateApplication generates the main application file plus its
// supporting config files, requirements, and Dockerfile.
func (f *FastAPI) generateApplication(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	architecture := agent.MapParam(params, "architecture")

	req := protocol.NewRequest(f.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		appPrompt(cfg, architecture))
	req.Language = "python"
	req.Framework = "fastapi"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	configFiles, err := f.generateConfigFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	requirements, err := f.generateRequirementsFile(ctx, cfg)
	if err != nil {
		return nil, err
	}
	dockerfile, err := f.generateDockerfile(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"main_application": resp.Result,
		"config_files":     configFiles,
		"requirements_txt": requirements,
		"dockerfile":       dockerfile,
		"structure":        projectStructure(cfg.APIVersion),
		"generation_metadata": map[string]any{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"generator":    f.Name(),
			"framework":    "fastapi",
			"version":      "0.115.0+",
		},
	}, nil
}

// generateRoutes generates routers for the given API design.
func (f *FastAPI) generateRoutes(ctx context.Context, params map[string]any) (map[string]any, error) {
	apiDesign := agent.MapParam(params, "api_design")
	dataModels := agent.SliceParam(params, "data_models")
	authRequired := agent.BoolParam(params, "auth_required")

	req := protocol.NewRequest(f.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		routesPrompt(apiDesign, dataModels, authRequired))
	req.Language = "python"
	req.Framework = "fastapi"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	authDeps := map[string]any{}
	if authRequired {
		authDeps = authDependencies(resp.Result)
	}

	return map[string]any{
		"routes_code":         resp.Result,
		"router_files":        routerFiles(resp.Result),
		"endpoints_summary":   endpointsFromRoutes(resp.Result),
		"auth_dependencies":   authDeps,
		"generation_metadata": f.generationMetadata(),
	}, nil
}

// generateSchemas generates Pydantic schemas for the data models.
func (f *FastAPI) generateSchemas(ctx context.Context, params map[string]any) (map[string]any, error) {
	dataModels := agent.SliceParam(params, "data_models")
	apiDesign := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(f.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		schemasPrompt(dataModels, apiDesign))
	req.Language = "python"
	req.Framework = "pydantic"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"schemas_code":        resp.Result,
		"schema_classes":      schemaClasses(resp.Result),
		"validation_rules":    validationRules(resp.Result),
		"generation_metadata": f.generationMetadata(),
	}, nil
}

// generateMiddleware generates the middleware stack.
func (f *FastAPI) generateMiddleware(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	features := agent.StringsParam(params, "features")

	req := protocol.NewRequest(f.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		middlewarePrompt(cfg, features))
	req.SystemPrompt = f.systemPrompt(middlewareSystemPrompt)

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"middleware_code":     resp.Result,
		"middleware_order":    middlewareOrder(resp.Result),
		"configuration":       middlewareConfig(resp.Result),
		"generation_metadata": f.generationMetadata(),
	}, nil
}

// generateAuthentication generates the authentication system.
func (f *FastAPI) generateAuthentication(ctx context.Context, params map[string]any) (map[string]any, error) {
	authConfig := agent.MapParam(params, "auth_config")
	userModel := agent.MapParam(params, "user_model")

	req := protocol.NewRequest(f.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		authPrompt(authConfig, userModel))
	req.Language = "python"
	req.Framework = "fastapi_auth"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"auth_code":           resp.Result,
		"auth_routes":         authRoutes(resp.Result),
		"dependencies":        authDependencies(resp.Result),
		"utilities":           authUtilities(resp.Result),
		"generation_metadata": f.generationMetadata(),
	}, nil
}

// generateModels generates SQLAlchemy models.
func (f *FastAPI) generateModels(ctx context.Context, params map[string]any) (map[string]any, error) {
	dataModels := agent.SliceParam(params, "data_models")
	relationships := agent.SliceParam(params, "relationships")
	databaseConfig := agent.MapParam(params, "database_config")

	req := protocol.NewRequest(f.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		modelsPrompt(dataModels, relationships, databaseConfig))
	req.SystemPrompt = f.systemPrompt(modelsSystemPrompt)

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"models_code":           resp.Result,
		"model_classes":         modelClasses(resp.Result),
		"relationships_defined": modelRelationships(resp.Result),
		"database_config":       databaseConfigSummary(resp.Result),
		"generation_metadata":   f.generationMetadata(),
	}, nil
}

// generateDependencies generates FastAPI dependency functions.
func (f *FastAPI) generateDependencies(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(f.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		dependenciesPrompt(cfg))
	req.Language = "python"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"dependencies_code":    resp.Result,
		"dependency_functions": dependencyFunctions(resp.Result),
		"generation_metadata":  f.generationMetadata(),
	}, nil
}

// Supporting file generation for the application task.

func (f *FastAPI) generateConfigFiles(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(f.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		configFilesPrompt(cfg))
	req.Language = "python"

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return configFiles(resp.Result), nil
}

func (f *FastAPI) generateRequirementsFile(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(f.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		requirementsPrompt(cfg))

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (f *FastAPI) generateDockerfile(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(f.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		dockerfilePrompt(cfg))

	resp, err := f.sender.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (f *FastAPI) generationMetadata() map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    f.Name(),
	}
}
