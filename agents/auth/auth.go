package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Authentication Specialist Agent
// =============================================================================

// Auth generates authentication and authorization systems: JWT, OAuth2,
// session, and social login flows, user management, RBAC, middleware,
// and password security. Flow and policy design routes to claude,
// implementation code to openai, and middleware to deepseek.
type Auth struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the auth agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates an Authentication Specialist agent wired to the given
// sender.
func New(sender protocol.Sender, cfg Config) (*Auth, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	a := &Auth{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}

	for _, capability := range Capabilities {
		a.AddCapability(capability)
	}

	a.RegisterHandler(TaskGenerateJWT, a.generateJWT)
	a.RegisterHandler(TaskGenerateOAuth2, a.generateOAuth2)
	a.RegisterHandler(TaskGenerateSession, a.generateSession)
	a.RegisterHandler(TaskGenerateUserManagement, a.generateUserManagement)
	a.RegisterHandler(TaskGenerateRolePermissions, a.generateRolePermissions)
	a.RegisterHandler(TaskGenerateMiddleware, a.generateMiddleware)
	a.RegisterHandler(TaskGeneratePasswordSecurity, a.generatePasswordSecurity)
	a.RegisterHandler(TaskGenerateSocialAuth, a.generateSocialAuth)

	return a, nil
}

func (a *Auth) systemPrompt(taskDefault string) string {
	if a.config.SystemPrompt != "" {
		return a.config.SystemPrompt
	}
	return taskDefault
}

// generateJWT generates a complete JWT authentication system with
// login, registration, refresh, and logout endpoints.
func (a *Auth) generateJWT(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	userModel := agent.MapParam(params, "user_model")

	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = backend.NewAuthConfig(backend.AuthJWT)
	}

	req := protocol.NewRequest(a.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		jwtPrompt(cfg, authCfg, userModel))
	req.Language = cfg.Language()
	req.Framework = fmt.Sprintf("%s_jwt", cfg.Framework)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"auth_code":           resp.Result,
		"endpoints":           authEndpoints(resp.Result),
		"middleware":          authMiddleware(resp.Result),
		"utilities":           authUtilities(resp.Result),
		"security_features":   securityFeatures(resp.Result),
		"configuration":       authConfiguration(resp.Result),
		"generation_metadata": a.methodMetadata("jwt"),
	}, nil
}

// generateOAuth2 generates the OAuth2 authorization flows for the
// requested providers.
func (a *Auth) generateOAuth2(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	providers := agent.StringsOrDefault(params, "oauth_providers", []string{"google", "github"})

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		oauth2Prompt(cfg, providers))
	req.SystemPrompt = a.systemPrompt(oauth2SystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"oauth2_code":          resp.Result,
		"provider_configs":     providerConfigs(resp.Result),
		"flow_handlers":        flowHandlers(resp.Result),
		"security_validations": securityValidations(resp.Result),
		"error_handling":       errorHandling(resp.Result),
		"generation_metadata":  a.methodMetadata("oauth2"),
	}, nil
}

// generateSession generates cookie-backed session authentication with
// CSRF protection.
func (a *Auth) generateSession(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(a.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		sessionPrompt(cfg))
	req.Language = cfg.Language()
	req.Framework = fmt.Sprintf("%s_session", cfg.Framework)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"session_code":        resp.Result,
		"session_config":      sessionConfig(resp.Result),
		"csrf_protection":     csrfProtection(resp.Result),
		"security_middleware": securityMiddleware(resp.Result),
		"generation_metadata": a.methodMetadata("session"),
	}, nil
}

// generateUserManagement generates the user model, CRUD operations, and
// service layer.
func (a *Auth) generateUserManagement(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	userFields := agent.SliceParam(params, "user_fields")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		userManagementPrompt(cfg, userFields))
	req.SystemPrompt = a.systemPrompt(usersSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"user_management_code": resp.Result,
		"user_model":           userModelInfo(resp.Result),
		"crud_operations":      crudOperations(resp.Result),
		"validation_rules":     validationRules(resp.Result),
		"api_endpoints":        apiEndpoints(resp.Result),
		"business_logic":       businessLogic(resp.Result),
		"generation_metadata":  a.generationMetadata(),
	}, nil
}

// generateRolePermissions generates a role-based access control system
// with hierarchical roles.
func (a *Auth) generateRolePermissions(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	roles := agent.StringsOrDefault(params, "roles", []string{"admin", "user", "moderator"})
	permissions := agent.SliceParam(params, "permissions")

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		rbacPrompt(cfg, roles, permissions))
	req.SystemPrompt = a.systemPrompt(rbacSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"rbac_code":             resp.Result,
		"role_model":            roleModelInfo(resp.Result),
		"permission_model":      permissionModelInfo(resp.Result),
		"permission_decorators": permissionDecorators(resp.Result),
		"assignment_logic":      assignmentLogic(resp.Result),
		"checking_utilities":    checkingUtilities(resp.Result),
		"generation_metadata":   a.generationMetadata(),
	}, nil
}

// generateMiddleware generates the request authentication middleware
// stack.
func (a *Auth) generateMiddleware(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(a.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		middlewarePrompt(cfg))
	req.Language = cfg.Language()

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"middleware_code":     resp.Result,
		"middleware_classes":  middlewareClasses(resp.Result),
		"configuration":       middlewareConfiguration(resp.Result),
		"error_handlers":      errorHandlers(resp.Result),
		"generation_metadata": a.generationMetadata(),
	}, nil
}

// generatePasswordSecurity generates hashing, validation, reset, and
// lockout systems.
func (a *Auth) generatePasswordSecurity(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(a.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		passwordSecurityPrompt(cfg))
	req.SystemPrompt = a.systemPrompt(passwordSystemPrompt)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"password_security_code": resp.Result,
		"hashing_utilities":      hashingUtilities(resp.Result),
		"validation_functions":   validationFunctions(resp.Result),
		"reset_system":           resetSystem(resp.Result),
		"lockout_logic":          lockoutLogic(resp.Result),
		"audit_functions":        auditFunctions(resp.Result),
		"generation_metadata":    a.generationMetadata(),
	}, nil
}

// generateSocialAuth generates social login integration for the
// requested providers.
func (a *Auth) generateSocialAuth(ctx context.Context, params map[string]any) (map[string]any, error) {
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}
	providers := agent.StringsOrDefault(params, "providers", []string{"google", "github", "facebook"})

	req := protocol.NewRequest(a.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		socialAuthPrompt(cfg, providers))
	req.Language = cfg.Language()
	req.Framework = fmt.Sprintf("%s_social", cfg.Framework)

	resp, err := a.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"social_auth_code":    resp.Result,
		"provider_configs":    socialProviderConfigs(resp.Result),
		"flow_handlers":       socialFlowHandlers(resp.Result),
		"profile_mappers":     profileMappers(resp.Result),
		"linking_logic":       linkingLogic(resp.Result),
		"management_api":      managementAPI(resp.Result),
		"generation_metadata": a.generationMetadata(),
	}, nil
}

func (a *Auth) generationMetadata() map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    a.Name(),
	}
}

func (a *Auth) methodMetadata(method string) map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    a.Name(),
		"auth_method":  method,
	}
}
