package django

import (
	"context"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Django Generator Agent
// =============================================================================

// Django generates Django backend code: the project skeleton with split
// settings, ORM models, views and URL configuration, the admin interface,
// Django REST Framework APIs, and authentication. Architecture and
// configuration heavy tasks route to claude; model and URL code routes
// to openai; view code routes to deepseek.
type Django struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the Django agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a Django Generator agent wired to the given sender.
func New(sender protocol.Sender, cfg Config) (*Django, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	d := &Django{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}
	d.SetGenericLabel("Django")
	d.SetResultMetadata("framework", "django")

	for _, capability := range Capabilities {
		d.AddCapability(capability)
	}

	d.RegisterHandler(TaskGenerateProject, d.generateProject)
	d.RegisterHandler(TaskGenerateModels, d.generateModels)
	d.RegisterHandler(TaskGenerateViews, d.generateViews)
	d.RegisterHandler(TaskGenerateURLs, d.generateURLs)
	d.RegisterHandler(TaskGenerateAdmin, d.generateAdmin)
	d.RegisterHandler(TaskGenerateRESTAPI, d.generateRESTFramework)
	d.RegisterHandler(TaskGenerateAuth, d.generateAuthentication)
	d.RegisterHandler(TaskGenerateSettings, d.generateSettings)

	return d, nil
}

func (d *Django) systemPrompt(taskDefault string) string {
	if d.config.SystemPrompt != "" {
		return d.config.SystemPrompt
	}
	return taskDefault
}

// generateProject generates the project skeleton plus the static
// environment files every generated project carries.
func (d *Django) generateProject(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	architecture := agent.MapParam(params, "architecture")

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		projectPrompt(cfg, architecture))
	req.SystemPrompt = d.systemPrompt(projectSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"project_structure":   resp.Result,
		"settings_files":      settingsFiles(),
		"requirements_files":  requirementsFiles(),
		"management_commands": managementCommands(),
		"apps_created":        djangoApps(resp.Result),
		"generation_metadata": map[string]any{
			"generated_at":   time.Now().UTC().Format(time.RFC3339),
			"generator":      d.Name(),
			"framework":      "django",
			"django_version": "4.2+",
		},
	}, nil
}

// generateModels generates Django ORM models for the data schema.
func (d *Django) generateModels(ctx context.Context, params map[string]any) (map[string]any, error) {
	dataModels := agent.SliceParam(params, "data_models")
	relationships := agent.SliceParam(params, "relationships")
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(d.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		modelsPrompt(dataModels, relationships, cfg))
	req.Language = "python"
	req.Framework = "django"

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"models_code":               resp.Result,
		"model_classes":             modelClasses(resp.Result),
		"relationships_implemented": modelRelationships(resp.Result),
		"migrations_needed":         migrationInfo(resp.Result),
		"admin_registrations":       adminRegistrations(resp.Result),
		"generation_metadata":       d.generationMetadata(),
	}, nil
}

// generateViews generates function-based or class-based views.
func (d *Django) generateViews(ctx context.Context, params map[string]any) (map[string]any, error) {
	apiDesign := agent.MapParam(params, "api_design")
	models := agent.SliceParam(params, "models")
	viewType := agent.StringOrDefault(params, "view_type", "function")

	req := protocol.NewRequest(d.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		viewsPrompt(apiDesign, models, viewType))
	req.Language = "python"

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"views_code":          resp.Result,
		"view_functions":      viewFunctions(resp.Result),
		"url_patterns":        viewURLPatterns(resp.Result),
		"permissions_used":    viewPermissions(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

// generateURLs generates the project and app URL configuration.
func (d *Django) generateURLs(ctx context.Context, params map[string]any) (map[string]any, error) {
	views := agent.SliceParam(params, "views")
	apiDesign := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(d.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		urlsPrompt(views, apiDesign))
	req.Language = "python"
	req.Framework = "django_urls"

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"urls_code":           resp.Result,
		"url_patterns":        allURLPatterns(resp.Result),
		"namespaces":          urlNamespaces(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

// generateAdmin generates the admin interface.
func (d *Django) generateAdmin(ctx context.Context, params map[string]any) (map[string]any, error) {
	models := agent.SliceParam(params, "models")
	adminFeatures := agent.SliceParam(params, "admin_features")

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		adminPrompt(models, adminFeatures))
	req.SystemPrompt = d.systemPrompt(adminSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"admin_code":          resp.Result,
		"admin_classes":       adminClasses(resp.Result),
		"custom_actions":      adminActions(resp.Result),
		"inlines":             adminInlines(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

// generateRESTFramework generates a Django REST Framework API.
func (d *Django) generateRESTFramework(ctx context.Context, params map[string]any) (map[string]any, error) {
	models := agent.SliceParam(params, "models")
	apiDesign := agent.MapParam(params, "api_design")

	req := protocol.NewRequest(d.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		restFrameworkPrompt(models, apiDesign))
	req.Language = "python"
	req.Framework = "django_rest_framework"

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"drf_code":            resp.Result,
		"serializers":         drfSerializers(resp.Result),
		"viewsets":            drfViewSets(resp.Result),
		"permissions":         drfPermissions(resp.Result),
		"api_endpoints":       apiEndpoints(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

// generateAuthentication generates the authentication system.
func (d *Django) generateAuthentication(ctx context.Context, params map[string]any) (map[string]any, error) {
	authConfig := agent.MapParam(params, "auth_config")
	userModel := agent.MapParam(params, "user_model")

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		authPrompt(authConfig, userModel))
	req.SystemPrompt = d.systemPrompt(authSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"auth_code":           resp.Result,
		"user_model":          userModelInfo(resp.Result),
		"auth_views":          authViews(resp.Result),
		"auth_forms":          authForms(resp.Result),
		"auth_backends":       authBackends(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

// generateSettings generates environment-split settings modules.
func (d *Django) generateSettings(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		settingsPrompt(cfg))
	req.SystemPrompt = d.systemPrompt(settingsSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"settings_code":       resp.Result,
		"environment_configs": environmentConfigs(resp.Result),
		"security_settings":   securitySettings(resp.Result),
		"database_configs":    databaseConfigs(resp.Result),
		"generation_metadata": d.generationMetadata(),
	}, nil
}

func (d *Django) generationMetadata() map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    d.Name(),
	}
}
