package auth

// Agent identity.
const (
	AgentID   = "auth_specialist"
	AgentName = "Authentication Specialist Agent"
	AgentType = "authentication"
)

// Task names handled by the auth agent.
const (
	TaskGenerateJWT              = "generate_jwt_auth"
	TaskGenerateOAuth2           = "generate_oauth2_auth"
	TaskGenerateSession          = "generate_session_auth"
	TaskGenerateUserManagement   = "generate_user_management"
	TaskGenerateRolePermissions  = "generate_role_permissions"
	TaskGenerateMiddleware       = "generate_auth_middleware"
	TaskGeneratePasswordSecurity = "generate_password_security"
	TaskGenerateSocialAuth       = "generate_social_auth"
)

// Capabilities advertised by the auth agent.
var Capabilities = []string{
	TaskGenerateJWT,
	TaskGenerateOAuth2,
	TaskGenerateSession,
	TaskGenerateUserManagement,
	TaskGenerateRolePermissions,
	TaskGenerateMiddleware,
	TaskGeneratePasswordSecurity,
	TaskGenerateSocialAuth,
}
