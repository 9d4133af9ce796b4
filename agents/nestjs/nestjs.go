package nestjs

import (
	"context"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// NestJS Generator Agent
// =============================================================================

// NestJS generates NestJS backend code: the project skeleton, feature
// modules, controllers, services, TypeORM entities, authentication
// guards and strategies, DTOs, and validation pipes. TypeScript code
// routes to openai and deepseek; module and entity design routes to
// claude.
type NestJS struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the NestJS agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a NestJS Generator agent wired to the given sender.
func New(sender protocol.Sender, cfg Config) (*NestJS, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	n := &NestJS{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}
	n.SetGenericLabel("NestJS")
	n.SetResultMetadata("framework", "nestjs")

	for _, capability := range Capabilities {
		n.AddCapability(capability)
	}

	n.RegisterHandler(TaskGenerateProject, n.generateProject)
	n.RegisterHandler(TaskGenerateModules, n.generateModules)
	n.RegisterHandler(TaskGenerateControllers, n.generateControllers)
	n.RegisterHandler(TaskGenerateServices, n.generateServices)
	n.RegisterHandler(TaskGenerateEntities, n.generateEntities)
	n.RegisterHandler(TaskGenerateAuth, n.generateAuthentication)
	n.RegisterHandler(TaskGenerateDTOs, n.generateDTOs)
	n.RegisterHandler(TaskGeneratePipes, n.generatePipes)

	return n, nil
}

func (n *NestJS) systemPrompt(taskDefault string) string {
	if n.config.SystemPrompt != "" {
		return n.config.SystemPrompt
	}
	return taskDefault
}

// generateProject generates the project skeleton plus package.json,
// the static config files, and the Docker setup.
func (n *NestJS) generateProject(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	architecture := agent.MapParam(params, "architecture")

	req := protocol.NewRequest(n.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		projectPrompt(cfg, architecture))
	req.Language = "typescript"
	req.Framework = "nestjs"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	packageJSON, err := n.generatePackageJSON(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"project_structure": resp.Result,
		"config_files":      configFiles(),
		"package_json":      packageJSON,
		"docker_files":      dockerFiles(),
		"modules_created":   nestjsModules(resp.Result),
		"generation_metadata": map[string]any{
			"generated_at":   time.Now().UTC().Format(time.RFC3339),
			"generator":      n.Name(),
			"framework":      "nestjs",
			"nestjs_version": "10.0+",
			"node_version":   "18+",
		},
	}, nil
}

// generateModules generates feature modules for the domain entities.
func (n *NestJS) generateModules(ctx context.Context, params map[string]any) (map[string]any, error) {
	features := agent.SliceParam(params, "features")
	entities := agent.SliceParam(params, "entities")

	req := protocol.NewRequest(n.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		modulesPrompt(features, entities))
	req.SystemPrompt = n.systemPrompt(modulesSystemPrompt)

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"modules_code":        resp.Result,
		"module_classes":      moduleClasses(resp.Result),
		"dependencies":        moduleDependencies(resp.Result),
		"providers":           moduleProviders(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generateControllers generates controllers for the API design.
func (n *NestJS) generateControllers(ctx context.Context, params map[string]any) (map[string]any, error) {
	apiDesign := agent.MapParam(params, "api_design")
	entities := agent.SliceParam(params, "entities")

	req := protocol.NewRequest(n.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		controllersPrompt(apiDesign, entities))
	req.Language = "typescript"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"controllers_code":    resp.Result,
		"controller_classes":  controllerClasses(resp.Result),
		"routes":              controllerRoutes(resp.Result),
		"guards_used":         guardsUsed(resp.Result),
		"swagger_docs":        swaggerDocs(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generateServices generates injectable services for business logic.
func (n *NestJS) generateServices(ctx context.Context, params map[string]any) (map[string]any, error) {
	entities := agent.SliceParam(params, "entities")
	businessLogic := agent.SliceParam(params, "business_logic")

	req := protocol.NewRequest(n.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		servicesPrompt(entities, businessLogic))
	req.Language = "typescript"
	req.Framework = "nestjs_services"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"services_code":       resp.Result,
		"service_classes":     serviceClasses(resp.Result),
		"methods":             serviceMethods(resp.Result),
		"dependencies":        serviceDependencies(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generateEntities generates TypeORM entities for the data schema.
func (n *NestJS) generateEntities(ctx context.Context, params map[string]any) (map[string]any, error) {
	dataModels := agent.SliceParam(params, "data_models")
	relationships := agent.SliceParam(params, "relationships")
	databaseType := agent.StringOrDefault(params, "database_type", "postgresql")

	req := protocol.NewRequest(n.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		entitiesPrompt(dataModels, relationships, databaseType))
	req.SystemPrompt = n.systemPrompt(entitiesSystemPrompt)

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"entities_code":             resp.Result,
		"entity_classes":            entityClasses(resp.Result),
		"relationships_implemented": entityRelationships(resp.Result),
		"indexes":                   entityIndexes(resp.Result),
		"migrations_needed":         migrationRequirements(resp.Result),
		"generation_metadata":       n.generationMetadata(),
	}, nil
}

// generateAuthentication generates the authentication module with
// strategies and guards.
func (n *NestJS) generateAuthentication(ctx context.Context, params map[string]any) (map[string]any, error) {
	authConfig := agent.MapParam(params, "auth_config")
	authMethod := agent.StringOrDefault(params, "auth_method", "jwt")

	req := protocol.NewRequest(n.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		authPrompt(authConfig, authMethod))
	req.Language = "typescript"
	req.Framework = "nestjs_auth"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"auth_code":           resp.Result,
		"auth_module":         authModule(resp.Result),
		"strategies":          authStrategies(resp.Result),
		"guards":              authGuards(resp.Result),
		"decorators":          authDecorators(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generateDTOs generates validated data transfer objects.
func (n *NestJS) generateDTOs(ctx context.Context, params map[string]any) (map[string]any, error) {
	entities := agent.SliceParam(params, "entities")
	apiDesign := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(n.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		dtosPrompt(entities, apiDesign))
	req.Language = "typescript"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"dtos_code":           resp.Result,
		"dto_classes":         dtoClasses(resp.Result),
		"validation_rules":    dtoValidationRules(resp.Result),
		"transformations":     dtoTransformations(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generatePipes generates validation and transformation pipes.
func (n *NestJS) generatePipes(ctx context.Context, params map[string]any) (map[string]any, error) {
	validationRequirements := agent.SliceParam(params, "validation_requirements")

	req := protocol.NewRequest(n.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		pipesPrompt(validationRequirements))
	req.SystemPrompt = n.systemPrompt(pipesSystemPrompt)

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"pipes_code":          resp.Result,
		"pipe_classes":        pipeClasses(resp.Result),
		"validation_logic":    validationLogic(resp.Result),
		"custom_decorators":   customDecorators(resp.Result),
		"generation_metadata": n.generationMetadata(),
	}, nil
}

// generatePackageJSON asks the fast coding target for the dependency
// manifest of the generated project.
func (n *NestJS) generatePackageJSON(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(n.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		packageJSONPrompt(cfg))
	req.Language = "json"

	resp, err := n.sender.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}

func (n *NestJS) generationMetadata() map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    n.Name(),
	}
}
