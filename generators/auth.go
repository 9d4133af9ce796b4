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
// Auth Generator
// =============================================================================

// AuthGenerator builds authentication systems: login and token logic,
// authorization guards and permissions, password security, plus auth
// test suites and documentation.
type AuthGenerator struct {
	config Config
	sender protocol.Sender
}

// NewAuthGenerator creates an auth generator wired to the given sender.
func NewAuthGenerator(sender protocol.Sender, cfg Config) *AuthGenerator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &AuthGenerator{config: cfg, sender: sender}
}

// GenerateAuthentication builds the authentication system for the
// configured framework.
func (g *AuthGenerator) GenerateAuthentication(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	g.config.Logger.Info("generating authentication",
		"framework", cfg.Framework,
		"method", authConfig(cfg).Method,
	)

	switch cfg.Framework {
	case backend.FrameworkFastAPI:
		return g.generateFastAPI(ctx, cfg)
	case backend.FrameworkDjango:
		return g.generateDjango(ctx, cfg)
	case backend.FrameworkNestJS:
		return g.generateNestJS(ctx, cfg)
	default:
		return nil, fmt.Errorf("framework %s: %w", cfg.Framework, errors.ErrUnsupportedFramework)
	}
}

// GenerateFastAPIAuth builds the FastAPI authentication system.
func (g *AuthGenerator) GenerateFastAPIAuth(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	return g.generateFastAPI(ctx, cfg)
}

// GenerateDjangoAuth builds the Django authentication system.
func (g *AuthGenerator) GenerateDjangoAuth(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	return g.generateDjango(ctx, cfg)
}

// GenerateNestJSAuth builds the NestJS authentication system.
func (g *AuthGenerator) GenerateNestJSAuth(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	return g.generateNestJS(ctx, cfg)
}

// authConfig returns the config's auth section, or JWT defaults when
// the config carries none.
func authConfig(cfg *backend.Config) *backend.AuthConfig {
	if cfg.Auth != nil {
		return cfg.Auth
	}
	return backend.NewAuthConfig(backend.AuthJWT)
}

// =============================================================================
// FastAPI
// =============================================================================

func (g *AuthGenerator) generateFastAPI(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	authCfg := authConfig(cfg)

	req := protocol.NewRequest(authSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		fastapiAuthPrompt(authCfg))
	req.Language = "python"
	req.Framework = "fastapi"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseFastAPIAuthFiles(raw)

	switch authCfg.Method {
	case backend.AuthJWT:
		jwt, err := g.jwtUtilities(ctx, cfg, authCfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, jwt)
	case backend.AuthOAuth2:
		oauth2, err := g.oauth2Utilities(ctx, cfg, authCfg)
		if err != nil {
			return nil, err
		}
		maps.Copy(files, oauth2)
	}

	passwords, err := g.passwordSecurity(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, passwords)

	return files, nil
}

func (g *AuthGenerator) jwtUtilities(ctx context.Context, cfg *backend.Config, authCfg *backend.AuthConfig) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		jwtUtilitiesPrompt(cfg, authCfg))
	req.Language = cfg.Language()

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/core/jwt.py": raw}, nil
}

func (g *AuthGenerator) oauth2Utilities(ctx context.Context, cfg *backend.Config, authCfg *backend.AuthConfig) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		oauth2UtilitiesPrompt(cfg, authCfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/core/oauth2.py": raw}, nil
}

func (g *AuthGenerator) passwordSecurity(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		passwordSecurityPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/core/passwords.py": raw}, nil
}

// =============================================================================
// Django
// =============================================================================

func (g *AuthGenerator) generateDjango(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		djangoAuthPrompt(cfg))
	req.SystemPrompt = djangoAuthSystemPrompt

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseDjangoAuthFiles(raw)

	permissions, err := g.djangoPermissions(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, permissions)

	signals, err := g.djangoSignals(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, signals)

	return files, nil
}

func (g *AuthGenerator) djangoPermissions(ctx context.Context) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionCodeGeneration,
		djangoPermissionSystemPrompt)
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"permissions.py": raw}, nil
}

func (g *AuthGenerator) djangoSignals(ctx context.Context) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionCodeGeneration,
		djangoSignalsPrompt)
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"signals.py": raw}, nil
}

// =============================================================================
// NestJS
// =============================================================================

func (g *AuthGenerator) generateNestJS(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		nestjsAuthPrompt(cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseNestJSAuthFiles(raw)

	strategies, err := g.nestjsStrategies(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, strategies)

	guards, err := g.nestjsGuards(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, guards)

	return files, nil
}

func (g *AuthGenerator) nestjsStrategies(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetDeepSeek, protocol.ActionCodeGeneration,
		nestjsStrategiesPrompt(cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"src/auth/strategies/local.strategy.ts": "# Local strategy",
		"src/auth/strategies/jwt.strategy.ts":   raw,
	}, nil
}

func (g *AuthGenerator) nestjsGuards(ctx context.Context) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetDeepSeek, protocol.ActionCodeGeneration,
		nestjsAuthGuardsPrompt)
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"src/auth/guards/jwt-auth.guard.ts": raw,
		"src/auth/guards/roles.guard.ts":    "# Roles guard",
	}, nil
}

// =============================================================================
// Method-specific systems
// =============================================================================

// GenerateMethodSystem returns the method-specific auth scaffolding
// for the configured framework. Frameworks without scaffolding for
// the method yield an empty map.
func (g *AuthGenerator) GenerateMethodSystem(cfg *backend.Config) (map[string]string, error) {
	method := authConfig(cfg).Method

	switch method {
	case backend.AuthJWT:
		return jwtSystemFiles(cfg.Framework), nil
	case backend.AuthOAuth2:
		return oauth2SystemFiles(cfg.Framework), nil
	case backend.AuthSession:
		return sessionSystemFiles(cfg.Framework), nil
	default:
		return nil, fmt.Errorf("auth method %s not supported for system generation", method)
	}
}

// =============================================================================
// Auth tests and documentation
// =============================================================================

// GenerateTests builds the authentication test suite.
func (g *AuthGenerator) GenerateTests(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		authTestsPrompt(cfg))
	req.Language = cfg.Language()

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"tests/test_auth.py": raw}, nil
}

// GenerateDocumentation builds the authentication documentation set.
func (g *AuthGenerator) GenerateDocumentation(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(authSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		authDocumentationPrompt(cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"docs/authentication.md": raw,
		"docs/authorization.md":  "# Authorization guide",
		"docs/security.md":       "# Security best practices",
	}, nil
}
