package auth

import "github.com/genesis-engine/genesis-backend/core/backend"

// Baseline settings per authentication method. These seed generated
// configurations and give callers a stable reference for the defaults
// each method ships with.
var methodConfigs = map[backend.AuthMethod]map[string]any{
	backend.AuthJWT: {
		"token_type":      "Bearer",
		"default_expiry":  3600,
		"algorithm":       "HS256",
		"refresh_enabled": true,
	},
	backend.AuthOAuth2: {
		"flows":          []string{"authorization_code", "client_credentials"},
		"scopes":         []string{"read", "write"},
		"token_endpoint": "/oauth/token",
		"auth_endpoint":  "/oauth/authorize",
	},
	backend.AuthSession: {
		"session_timeout": 1800,
		"cookie_secure":   true,
		"cookie_httponly": true,
		"csrf_protection": true,
	},
}

// MethodConfig returns the baseline settings for the given
// authentication method. Unknown methods return nil.
func MethodConfig(method backend.AuthMethod) map[string]any {
	return methodConfigs[method]
}
