package generators

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"time"

	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Backend Generator
// =============================================================================

// Result is the output of one backend build.
type Result struct {
	// Files maps relative output paths to generated content.
	Files map[string]string `json:"files"`

	// Framework the project was generated for.
	Framework backend.Framework `json:"framework"`

	// Structure describes the project layout, path to purpose.
	Structure map[string]string `json:"structure"`

	// FeaturesImplemented echoes the configured feature list.
	FeaturesImplemented []string `json:"features_implemented"`

	// NextSteps lists the manual follow-ups for the generated project.
	NextSteps []string `json:"next_steps"`

	// Metadata records how the result was produced.
	Metadata Metadata `json:"generation_metadata"`
}

// Metadata describes a completed generation run.
type Metadata struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Generator   string            `json:"generator"`
	Framework   backend.Framework `json:"framework"`
	TotalFiles  int               `json:"total_files"`
}

// BackendGenerator builds complete backend applications. It owns the
// project-level files (entrypoint, configuration, packaging, docs)
// and delegates models, API endpoints, and authentication to the
// specialized generators.
type BackendGenerator struct {
	config Config
	sender protocol.Sender

	api    *APIGenerator
	models *ModelGenerator
	auth   *AuthGenerator
}

type buildFunc func(context.Context, *backend.Config, map[string]any) (*Result, error)

// NewBackendGenerator creates a backend generator wired to the given sender.
func NewBackendGenerator(sender protocol.Sender, cfg Config) *BackendGenerator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &BackendGenerator{
		config: cfg,
		sender: sender,
		api:    NewAPIGenerator(sender, cfg),
		models: NewModelGenerator(sender, cfg),
		auth:   NewAuthGenerator(sender, cfg),
	}
}

// Generate builds the complete backend application for the configured
// framework. Files are returned in the result rather than written, so
// callers decide how to persist them; outputPath is created up front
// so a writer can target it directly.
func (g *BackendGenerator) Generate(ctx context.Context, cfg *backend.Config, architecture map[string]any, outputPath string) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g.config.Logger.Info("generating backend",
		"framework", cfg.Framework,
		"project", cfg.ProjectName,
	)

	build, err := g.frameworkBuild(cfg.Framework)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result, err := build(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}

	common, err := g.commonFiles(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(result.Files, common)

	docs, err := g.documentation(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}
	maps.Copy(result.Files, docs)

	result.Metadata = Metadata{
		GeneratedAt: time.Now().UTC(),
		Generator:   "BackendGenerator",
		Framework:   cfg.Framework,
		TotalFiles:  len(result.Files),
	}

	g.config.Logger.Info("backend generation completed",
		"framework", cfg.Framework,
		"files", len(result.Files),
	)

	return result, nil
}

func (g *BackendGenerator) frameworkBuild(f backend.Framework) (buildFunc, error) {
	switch f {
	case backend.FrameworkFastAPI:
		return g.generateFastAPI, nil
	case backend.FrameworkDjango:
		return g.generateDjango, nil
	case backend.FrameworkNestJS:
		return g.generateNestJS, nil
	default:
		return nil, fmt.Errorf("framework %s: %w", f, errors.ErrUnsupportedFramework)
	}
}

// =============================================================================
// FastAPI
// =============================================================================

func (g *BackendGenerator) generateFastAPI(ctx context.Context, cfg *backend.Config, architecture map[string]any) (*Result, error) {
	files := map[string]string{}

	main, err := g.fastapiMain(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}
	files["app/main.py"] = main

	apiDesign, _ := architecture["api_design"].(map[string]any)
	apiFiles, err := g.api.GenerateFastAPIRoutes(ctx, apiDesign, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, apiFiles)

	dataModels, _ := architecture["data_models"].([]any)
	modelFiles, err := g.models.GenerateSQLAlchemyModels(ctx, dataModels, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, modelFiles)

	if cfg.Auth != nil {
		authFiles, err := g.auth.GenerateFastAPIAuth(ctx, cfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, authFiles)
	}

	configFiles, err := g.fastapiConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, configFiles)

	requirements, err := g.fastapiRequirements(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files["requirements.txt"] = requirements

	dockerfile, err := g.fastapiDockerfile(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files["Dockerfile"] = dockerfile

	compose, err := g.dockerCompose(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files["docker-compose.yml"] = compose

	if cfg.HasFeature("database") {
		alembicFiles, err := g.alembicConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, alembicFiles)
	}

	testFiles, err := g.fastapiTests(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, testFiles)

	return &Result{
		Files:               files,
		Framework:           backend.FrameworkFastAPI,
		Structure:           fastapiStructure(),
		FeaturesImplemented: cfg.Features,
		NextSteps:           fastapiNextSteps(cfg),
	}, nil
}

func (g *BackendGenerator) fastapiMain(ctx context.Context, cfg *backend.Config, architecture map[string]any) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiMainPrompt(cfg))
	req.Language = "python"
	req.Framework = "fastapi"

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) fastapiConfig(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		fastapiConfigPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseConfigFiles(raw), nil
}

func (g *BackendGenerator) fastapiRequirements(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		fastapiRequirementsPrompt(cfg))

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) fastapiDockerfile(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		fastapiDockerfilePrompt(cfg))

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) dockerCompose(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		dockerComposePrompt(cfg))
	req.Language = "yaml"

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) alembicConfig(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		alembicConfigPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseAlembicFiles(raw), nil
}

func (g *BackendGenerator) fastapiTests(ctx context.Context, cfg *backend.Config, architecture map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiTestsPrompt(cfg, architecture))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseTestFiles(raw), nil
}

// =============================================================================
// Django
// =============================================================================

func (g *BackendGenerator) generateDjango(ctx context.Context, cfg *backend.Config, architecture map[string]any) (*Result, error) {
	files := map[string]string{}

	projectFiles, err := g.djangoProject(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, projectFiles)

	dataModels, _ := architecture["data_models"].([]any)
	modelFiles, err := g.models.GenerateDjangoModels(ctx, dataModels, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, modelFiles)

	apiDesign, _ := architecture["api_design"].(map[string]any)
	apiFiles, err := g.api.GenerateDjangoViews(ctx, apiDesign, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, apiFiles)

	if cfg.Auth != nil {
		authFiles, err := g.auth.GenerateDjangoAuth(ctx, cfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, authFiles)
	}

	return &Result{
		Files:               files,
		Framework:           backend.FrameworkDjango,
		Structure:           djangoStructure(),
		FeaturesImplemented: cfg.Features,
		NextSteps:           djangoNextSteps(),
	}, nil
}

func (g *BackendGenerator) djangoProject(ctx context.Context, cfg *backend.Config, architecture map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		djangoProjectPrompt(cfg, architecture))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseDjangoProjectFiles(raw), nil
}

// =============================================================================
// NestJS
// =============================================================================

func (g *BackendGenerator) generateNestJS(ctx context.Context, cfg *backend.Config, architecture map[string]any) (*Result, error) {
	files := map[string]string{}

	appFiles, err := g.nestjsMain(ctx, cfg, architecture)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, appFiles)

	apiDesign, _ := architecture["api_design"].(map[string]any)
	apiFiles, err := g.api.GenerateNestJSControllers(ctx, apiDesign, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, apiFiles)

	dataModels, _ := architecture["data_models"].([]any)
	modelFiles, err := g.models.GenerateTypeORMEntities(ctx, dataModels, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, modelFiles)

	if cfg.Auth != nil {
		authFiles, err := g.auth.GenerateNestJSAuth(ctx, cfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, authFiles)
	}

	return &Result{
		Files:               files,
		Framework:           backend.FrameworkNestJS,
		Structure:           nestjsStructure(),
		FeaturesImplemented: cfg.Features,
		NextSteps:           nestjsNextSteps(),
	}, nil
}

func (g *BackendGenerator) nestjsMain(ctx context.Context, cfg *backend.Config, architecture map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		nestjsMainPrompt(cfg, architecture))
	req.Language = "typescript"
	req.Framework = "nestjs"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseNestJSAppFiles(raw), nil
}

// =============================================================================
// Common files and documentation
// =============================================================================

func (g *BackendGenerator) commonFiles(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	files := map[string]string{}

	gitignore, err := g.gitignore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files[".gitignore"] = gitignore

	readme, err := g.readme(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files["README.md"] = readme

	workflow, err := g.ciWorkflow(ctx, cfg)
	if err != nil {
		return nil, err
	}
	files[".github/workflows/ci.yml"] = workflow

	return files, nil
}

func (g *BackendGenerator) gitignore(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		gitignorePrompt(cfg))

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) readme(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		readmePrompt(cfg))

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) ciWorkflow(ctx context.Context, cfg *backend.Config) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		ciWorkflowPrompt(cfg))
	req.Language = "yaml"

	return sendText(ctx, g.sender, req)
}

func (g *BackendGenerator) documentation(ctx context.Context, cfg *backend.Config, architecture map[string]any) (map[string]string, error) {
	files := map[string]string{}

	apiDesign, _ := architecture["api_design"].(map[string]any)
	apiDocs, err := g.docFile(ctx, docsAPIPrompt(cfg, apiDesign))
	if err != nil {
		return nil, err
	}
	files["docs/api.md"] = apiDocs

	deployment, err := g.docFile(ctx, docsDeploymentPrompt(cfg))
	if err != nil {
		return nil, err
	}
	files["docs/deployment.md"] = deployment

	development, err := g.docFile(ctx, docsDevelopmentPrompt(cfg))
	if err != nil {
		return nil, err
	}
	files["docs/development.md"] = development

	return files, nil
}

func (g *BackendGenerator) docFile(ctx context.Context, prompt string) (string, error) {
	req := protocol.NewRequest(backendSenderID, protocol.TargetClaude, protocol.ActionReasoning, prompt)

	return sendText(ctx, g.sender, req)
}

// =============================================================================
// Project structure and next steps
// =============================================================================

func fastapiStructure() map[string]string {
	return map[string]string{
		"app/":          "Main application package",
		"app/main.py":   "FastAPI application entry point",
		"app/core/":     "Core configuration and utilities",
		"app/api/":      "API routes and endpoints",
		"app/models/":   "SQLAlchemy models",
		"app/schemas/":  "Pydantic schemas",
		"app/services/": "Business logic services",
		"tests/":        "Test modules",
		"alembic/":      "Database migrations",
	}
}

func djangoStructure() map[string]string {
	return map[string]string{
		"manage.py":     "Django management script",
		"config/":       "Django project configuration",
		"apps/":         "Django applications",
		"requirements/": "Requirements files",
		"static/":       "Static files",
		"media/":        "Media files",
	}
}

func nestjsStructure() map[string]string {
	return map[string]string{
		"src/":              "Source code",
		"src/main.ts":       "Application entry point",
		"src/app.module.ts": "Root module",
		"src/controllers/":  "Request handlers",
		"src/services/":     "Business logic",
		"src/entities/":     "TypeORM entities",
		"test/":             "Test files",
	}
}

func fastapiNextSteps(cfg *backend.Config) []string {
	steps := []string{
		"Review and update .env file with your configuration",
		"Run `pip install -r requirements.txt` to install dependencies",
		"Set up your database and run migrations with `alembic upgrade head`",
		"Start the development server with `uvicorn app.main:app --reload`",
		"Visit http://localhost:8000/docs to see API documentation",
	}

	if cfg.HasFeature("authentication") {
		steps = append(steps, "Configure JWT secret key in environment variables")
	}

	return steps
}

func djangoNextSteps() []string {
	return []string{
		"Update settings.py with your configuration",
		"Run `python manage.py migrate` to set up database",
		"Create a superuser with `python manage.py createsuperuser`",
		"Start the server with `python manage.py runserver`",
	}
}

func nestjsNextSteps() []string {
	return []string{
		"Install dependencies with `npm install`",
		"Update .env file with your configuration",
		"Run database migrations",
		"Start the server with `npm run start:dev`",
	}
}
