package generators

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// API Generator
// =============================================================================

// APIGenerator builds REST API endpoints: route handlers, schemas and
// DTOs, permissions and guards, plus API test suites and reference
// documentation.
type APIGenerator struct {
	config Config
	sender protocol.Sender
}

// NewAPIGenerator creates an API generator wired to the given sender.
func NewAPIGenerator(sender protocol.Sender, cfg Config) *APIGenerator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &APIGenerator{config: cfg, sender: sender}
}

// GenerateEndpoints builds API endpoint files for the configured framework.
func (g *APIGenerator) GenerateEndpoints(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	g.config.Logger.Info("generating api endpoints", "framework", cfg.Framework)

	switch cfg.Framework {
	case backend.FrameworkFastAPI:
		return g.generateFastAPI(ctx, apiDesign, cfg)
	case backend.FrameworkDjango:
		return g.generateDjango(ctx, apiDesign, cfg)
	case backend.FrameworkNestJS:
		return g.generateNestJS(ctx, apiDesign, cfg)
	default:
		return nil, fmt.Errorf("framework %s: %w", cfg.Framework, errors.ErrUnsupportedFramework)
	}
}

// GenerateFastAPIRoutes builds FastAPI routes and endpoints.
func (g *APIGenerator) GenerateFastAPIRoutes(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	return g.generateFastAPI(ctx, apiDesign, cfg)
}

// GenerateDjangoViews builds Django views and URL patterns.
func (g *APIGenerator) GenerateDjangoViews(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	return g.generateDjango(ctx, apiDesign, cfg)
}

// GenerateNestJSControllers builds NestJS controllers and services.
func (g *APIGenerator) GenerateNestJSControllers(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	return g.generateNestJS(ctx, apiDesign, cfg)
}

// =============================================================================
// FastAPI
// =============================================================================

func (g *APIGenerator) generateFastAPI(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiAPIPrompt(apiDesign, cfg))
	req.Language = "python"
	req.Framework = "fastapi"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseFastAPIAPIFiles(raw)

	deps, err := g.fastapiDependencies(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, deps)

	schemas, err := g.fastapiSchemas(ctx, apiDesign)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, schemas)

	spec, err := g.openapiSpec(ctx, apiDesign, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, spec)

	return files, nil
}

func (g *APIGenerator) fastapiDependencies(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiDependenciesPrompt(cfg))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/api/deps.py": raw}, nil
}

func (g *APIGenerator) fastapiSchemas(ctx context.Context, apiDesign map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiSchemasPrompt(apiDesign))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/schemas/api.py": raw}, nil
}

func (g *APIGenerator) openapiSpec(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		openapiSpecPrompt(apiDesign, cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"docs/openapi.json": raw}, nil
}

// =============================================================================
// Django
// =============================================================================

func (g *APIGenerator) generateDjango(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		djangoAPIPrompt(apiDesign, cfg))
	req.SystemPrompt = djangoAPISystemPrompt

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseDjangoAPIFiles(raw)

	serializers, err := g.djangoSerializers(ctx, apiDesign)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, serializers)

	permissions, err := g.djangoPermissions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, permissions)

	filters, err := g.djangoFilters(ctx, apiDesign)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, filters)

	return files, nil
}

func (g *APIGenerator) djangoSerializers(ctx context.Context, apiDesign map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		djangoSerializersPrompt(apiDesign))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"api/serializers.py": raw}, nil
}

func (g *APIGenerator) djangoPermissions(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		djangoPermissionsPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"api/permissions.py": raw}, nil
}

func (g *APIGenerator) djangoFilters(ctx context.Context, apiDesign map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		djangoFiltersPrompt(apiDesign))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"api/filters.py": raw}, nil
}

// =============================================================================
// NestJS
// =============================================================================

func (g *APIGenerator) generateNestJS(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		nestjsAPIPrompt(apiDesign, cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseNestJSAPIFiles(raw)

	dtos, err := g.nestjsDTOs(ctx, apiDesign)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, dtos)

	guards, err := g.nestjsGuards(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, guards)

	interceptors, err := g.nestjsInterceptors(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, interceptors)

	return files, nil
}

func (g *APIGenerator) nestjsDTOs(ctx context.Context, apiDesign map[string]any) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		nestjsDTOsPrompt(apiDesign))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"src/dto/api.dto.ts": raw}, nil
}

func (g *APIGenerator) nestjsGuards(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		nestjsGuardsPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"src/guards/api.guards.ts": raw}, nil
}

func (g *APIGenerator) nestjsInterceptors(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		nestjsInterceptorsPrompt(cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"src/interceptors/api.interceptors.ts": raw}, nil
}

// =============================================================================
// API tests and documentation
// =============================================================================

// GenerateTests builds the API test suite for the configured framework.
func (g *APIGenerator) GenerateTests(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		apiTestsPrompt(apiDesign, cfg))
	req.Language = cfg.Language()
	req.Framework = fmt.Sprintf("%s_tests", cfg.Framework)

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseAPITestFiles(raw, cfg.Framework), nil
}

// GenerateDocumentation builds the API reference documentation set.
func (g *APIGenerator) GenerateDocumentation(ctx context.Context, apiDesign map[string]any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(apiSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		apiDocumentationPrompt(apiDesign, cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"docs/api/README.md":         raw,
		"docs/api/authentication.md": "# Authentication guide",
		"docs/api/endpoints.md":      "# Endpoints documentation",
		"docs/api/errors.md":         "# Error handling guide",
	}, nil
}
