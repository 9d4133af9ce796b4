package auth

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/backend"
)

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	oauth2SystemPrompt   = "You are an OAuth2 security expert. Generate secure, compliant implementations."
	usersSystemPrompt    = "You are a user management expert. Generate secure, compliant systems."
	rbacSystemPrompt     = "You are an RBAC expert. Generate flexible, scalable permission systems."
	passwordSystemPrompt = "You are a password security expert. Generate secure, compliant systems."
)

func jwtPrompt(cfg *backend.Config, authCfg *backend.AuthConfig, userModel map[string]any) string {
	return fmt.Sprintf(`Generate comprehensive JWT authentication system for %s:

Framework: %s
User Model: %v
Secret Key: %s
Algorithm: %s
Token Expiry: %d minutes
Refresh Token Expiry: %d days

Generate complete JWT authentication including:
1. JWT token creation and signing
2. Token verification and validation
3. Token refresh mechanism
4. User login endpoint with credentials validation
5. User registration endpoint with password hashing
6. Password reset functionality
7. Token blacklisting for logout
8. Authentication dependencies for protected routes
9. Permission checking decorators/middleware
10. Error handling for authentication failures

Security considerations:
- Secure password hashing (bcrypt/argon2)
- Token expiration handling
- Rate limiting for authentication endpoints
- Input validation and sanitization
- Secure token storage recommendations

Return production-ready authentication code.`,
		cfg.Framework, cfg.Framework, userModel, authCfg.SecretKey, authCfg.Algorithm,
		authCfg.AccessTokenExpireMinutes, authCfg.RefreshTokenExpireDays)
}

func oauth2Prompt(cfg *backend.Config, providers []string) string {
	return fmt.Sprintf(`Generate OAuth2 authentication system for %s:

Framework: %s
OAuth Providers: %v
Client Configuration: Required for each provider

Generate complete OAuth2 authentication including:
1. OAuth2 authorization flow implementation
2. Provider-specific client configurations
3. Authorization URL generation
4. Token exchange with providers
5. User profile fetching from providers
6. Account linking with local users
7. Refresh token handling
8. Provider-specific scopes handling
9. Error handling for OAuth failures
10. Security validations (state parameter, nonce)

For each provider include:
- Authorization endpoint configuration
- Token endpoint configuration
- User info endpoint configuration
- Scope definitions
- Error handling

Security considerations:
- State parameter validation
- PKCE for public clients
- Secure redirect URI validation
- Token storage security

Return production-ready OAuth2 implementation.`,
		cfg.Framework, cfg.Framework, providers)
}

func sessionPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate session-based authentication system for %s:

Framework: %s
Session Timeout: 30 minutes
Security Requirements: CSRF protection, secure cookies

Generate complete session authentication including:
1. Session management and storage
2. Login form handling with CSRF protection
3. Session cookie configuration (secure, httponly)
4. Session timeout and cleanup
5. Remember me functionality
6. Logout and session destruction
7. Session fixation protection
8. Concurrent session handling
9. Session-based authorization
10. Audit logging for sessions

Security considerations:
- Session regeneration on login
- CSRF token validation
- Secure cookie attributes
- Session timeout handling
- Session storage security

For Django: Use built-in session framework
For FastAPI: Implement custom session management
For NestJS: Use express-session with security

Return production-ready session implementation.`,
		cfg.Framework, cfg.Framework)
}

func userManagementPrompt(cfg *backend.Config, userFields []any) string {
	return fmt.Sprintf(`Generate comprehensive user management system for %s:

Framework: %s
User Fields: %v
Authentication Method: %s

Generate complete user management including:
1. User registration with validation
2. Email verification system
3. User profile management
4. Password change functionality
5. Account activation/deactivation
6. User search and filtering
7. User listing with pagination
8. Account deletion (soft/hard delete)
9. User import/export functionality
10. Admin user management interface

Features to include:
- Input validation and sanitization
- Duplicate email prevention
- Password strength validation
- Rate limiting for sensitive operations
- Audit logging for user actions
- GDPR compliance considerations

Generate:
- User model/entity with all fields
- CRUD operations for users
- API endpoints for user management
- Validation schemas
- Service layer for business logic

Return complete user management system.`,
		cfg.Framework, cfg.Framework, userFields, cfg.AuthMethod())
}

func rbacPrompt(cfg *backend.Config, roles []string, permissions []any) string {
	return fmt.Sprintf(`Generate Role-Based Access Control (RBAC) system for %s:

Framework: %s
Roles: %v
Permissions: %v

Generate complete RBAC system including:
1. Role model with hierarchical support
2. Permission model with granular controls
3. User-role assignment system
4. Role-permission assignment system
5. Permission checking decorators/middleware
6. Role inheritance and hierarchies
7. Dynamic permission evaluation
8. Resource-based permissions
9. Permission caching for performance
10. Admin interface for role management

Features to include:
- Multi-role assignment per user
- Permission aggregation from multiple roles
- Time-based permissions (temporary access)
- Resource-level permissions (object-level)
- Permission auditing and logging
- Efficient permission checking queries

Generate:
- Role and Permission models
- Many-to-many relationship tables
- Permission checking utilities
- Decorators for route protection
- API endpoints for role management
- Migration scripts for default roles

Return complete RBAC implementation.`,
		cfg.Framework, cfg.Framework, roles, permissions)
}

func middlewarePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate authentication middleware for %s:

Framework: %s
Auth Method: %s
Features: %v

Generate comprehensive authentication middleware including:
1. Request authentication validation
2. Token/session extraction and validation
3. User context injection into requests
4. Protected route handling
5. Permission-based route protection
6. Rate limiting for authentication
7. Audit logging for auth events
8. Error handling and response formatting
9. CORS handling for auth headers
10. Security headers injection

Middleware features:
- Configurable authentication requirements
- Flexible permission checking
- Efficient database queries
- Proper error responses
- Request context management
- Performance optimization

For FastAPI: Use dependency injection system
For Django: Use middleware classes
For NestJS: Use guards and interceptors

Return production-ready middleware.`,
		cfg.Framework, cfg.Framework, cfg.AuthMethod(), cfg.Features)
}

func passwordSecurityPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate comprehensive password security system for %s:

Framework: %s
Security Requirements: Industry standard password security

Generate complete password security including:
1. Secure password hashing (bcrypt/argon2)
2. Password strength validation
3. Password history tracking
4. Password reset with secure tokens
5. Password change functionality
6. Account lockout after failed attempts
7. Password expiration policies
8. Breach detection integration
9. Two-factor authentication support
10. Password recovery workflows

Security features:
- Configurable password policies
- Secure random token generation
- Time-limited reset tokens
- Rate limiting for password operations
- Audit logging for password events
- Secure password transmission

Generate:
- Password hashing utilities
- Validation functions
- Reset token management
- Account lockout logic
- Password history tracking
- Security audit functions

Return production-ready password security system.`,
		cfg.Framework, cfg.Framework)
}

func socialAuthPrompt(cfg *backend.Config, providers []string) string {
	return fmt.Sprintf(`Generate social authentication integration for %s:

Framework: %s
Social Providers: %v

Generate complete social authentication including:
1. Provider-specific OAuth configuration
2. Social login button integration
3. User profile data fetching
4. Account linking with existing users
5. Social account management
6. Provider-specific error handling
7. Fallback authentication options
8. Social profile synchronization
9. Provider disconnection functionality
10. Social sharing capabilities

For each provider include:
- Client configuration
- Authorization flow
- Profile data mapping
- Scope management
- Error handling

Generate:
- Provider configuration classes
- OAuth flow handlers
- User profile mappers
- Account linking logic
- Frontend integration helpers
- Provider management API

Return complete social authentication system.`,
		cfg.Framework, cfg.Framework, providers)
}
