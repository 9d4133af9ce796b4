package auth

// Response summarizers. Endpoint listings, provider configurations, and
// symbol inventories come back as stable structures the orchestration
// layer keys on; generated code rides along raw under its own result
// key.

func authEndpoints(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/auth/login", "method": "POST", "description": "User login"},
		{"path": "/auth/register", "method": "POST", "description": "User registration"},
		{"path": "/auth/refresh", "method": "POST", "description": "Token refresh"},
		{"path": "/auth/logout", "method": "POST", "description": "User logout"},
	}
}

func authMiddleware(raw string) []string {
	return []string{"get_current_user", "require_authentication", "check_permissions"}
}

func authUtilities(raw string) []string {
	return []string{"create_access_token", "verify_token", "hash_password", "verify_password"}
}

func securityFeatures(raw string) []string {
	return []string{"Password hashing", "Token expiration", "Rate limiting", "Input validation"}
}

func authConfiguration(raw string) map[string]string {
	return map[string]string{
		"token_expiry":   "30 minutes",
		"refresh_expiry": "7 days",
		"algorithm":      "HS256",
		"issuer":         "genesis-api",
	}
}

func providerConfigs(raw string) map[string]map[string]string {
	return map[string]map[string]string{
		"google": {
			"client_id":     "GOOGLE_CLIENT_ID",
			"client_secret": "GOOGLE_CLIENT_SECRET",
			"auth_uri":      "https://accounts.google.com/o/oauth2/auth",
			"token_uri":     "https://oauth2.googleapis.com/token",
		},
		"github": {
			"client_id":     "GITHUB_CLIENT_ID",
			"client_secret": "GITHUB_CLIENT_SECRET",
			"auth_uri":      "https://github.com/login/oauth/authorize",
			"token_uri":     "https://github.com/login/oauth/access_token",
		},
	}
}

func flowHandlers(raw string) []string {
	return []string{"authorization_code_flow", "client_credentials_flow", "refresh_token_flow"}
}

func securityValidations(raw string) []string {
	return []string{"state_parameter_validation", "nonce_validation", "redirect_uri_validation"}
}

func errorHandling(raw string) []string {
	return []string{"invalid_grant", "unauthorized_client", "access_denied", "server_error"}
}

func sessionConfig(raw string) map[string]any {
	return map[string]any{
		"timeout":  "30 minutes",
		"secure":   true,
		"httponly": true,
		"samesite": "lax",
	}
}

func csrfProtection(raw string) map[string]string {
	return map[string]string{
		"token_generation": "secure_random_token",
		"validation":       "form_and_header_validation",
		"storage":          "session_storage",
	}
}

func securityMiddleware(raw string) []string {
	return []string{"csrf_middleware", "session_middleware", "security_headers_middleware"}
}

func userModelInfo(raw string) map[string][]string {
	return map[string][]string{
		"fields":        {"id", "email", "password_hash", "is_active", "created_at"},
		"relationships": {"roles", "permissions", "sessions"},
		"methods":       {"check_password", "set_password", "get_full_name"},
	}
}

func crudOperations(raw string) []string {
	return []string{"create_user", "get_user", "update_user", "delete_user", "list_users"}
}

func validationRules(raw string) map[string][]string {
	return map[string][]string{
		"email":    {"email_format", "unique", "required"},
		"password": {"min_length_8", "complexity", "required"},
		"name":     {"max_length_100", "required"},
	}
}

func apiEndpoints(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/users", "method": "GET", "description": "List users"},
		{"path": "/users", "method": "POST", "description": "Create user"},
		{"path": "/users/{id}", "method": "GET", "description": "Get user"},
		{"path": "/users/{id}", "method": "PUT", "description": "Update user"},
		{"path": "/users/{id}", "method": "DELETE", "description": "Delete user"},
	}
}

func businessLogic(raw string) []string {
	return []string{"UserService", "RegistrationService", "ProfileService", "NotificationService"}
}

func roleModelInfo(raw string) map[string][]string {
	return map[string][]string{
		"fields":        {"id", "name", "description", "level", "created_at"},
		"relationships": {"users", "permissions", "parent_role"},
		"methods":       {"has_permission", "add_permission", "remove_permission"},
	}
}

func permissionModelInfo(raw string) map[string][]string {
	return map[string][]string{
		"fields":        {"id", "name", "resource", "action", "description"},
		"relationships": {"roles"},
		"methods":       {"check_access", "get_resource_permissions"},
	}
}

func permissionDecorators(raw string) []string {
	return []string{"require_permission", "require_role", "require_auth", "check_resource_access"}
}

func assignmentLogic(raw string) []string {
	return []string{"assign_role", "remove_role", "assign_permission", "remove_permission"}
}

func checkingUtilities(raw string) []string {
	return []string{"has_permission", "has_role", "can_access_resource", "get_user_permissions"}
}

func middlewareClasses(raw string) []string {
	return []string{"AuthenticationMiddleware", "PermissionMiddleware", "RateLimitMiddleware"}
}

func middlewareConfiguration(raw string) map[string]any {
	return map[string]any{
		"auth_header":   "Authorization",
		"token_prefix":  "Bearer",
		"rate_limit":    "100/hour",
		"exclude_paths": []string{"/health", "/docs"},
	}
}

func errorHandlers(raw string) []string {
	return []string{"handle_auth_error", "handle_permission_error", "handle_rate_limit_error"}
}

func hashingUtilities(raw string) []string {
	return []string{"hash_password", "verify_password", "generate_salt", "check_strength"}
}

func validationFunctions(raw string) []string {
	return []string{"validate_strength", "check_history", "validate_complexity", "check_breach"}
}

func resetSystem(raw string) []string {
	return []string{"generate_reset_token", "validate_reset_token", "reset_password", "send_reset_email"}
}

func lockoutLogic(raw string) []string {
	return []string{"track_failed_attempts", "lock_account", "unlock_account", "check_lockout_status"}
}

func auditFunctions(raw string) []string {
	return []string{"log_password_change", "log_failed_attempt", "log_lockout", "log_reset_request"}
}

func socialProviderConfigs(raw string) map[string]map[string]any {
	return map[string]map[string]any{
		"google":   {"scopes": []string{"email", "profile"}, "button_style": "standard"},
		"github":   {"scopes": []string{"user:email"}, "button_style": "dark"},
		"facebook": {"scopes": []string{"email", "public_profile"}, "button_style": "continue_with"},
	}
}

func socialFlowHandlers(raw string) []string {
	return []string{"handle_google_auth", "handle_github_auth", "handle_facebook_auth", "handle_callback"}
}

func profileMappers(raw string) []string {
	return []string{"map_google_profile", "map_github_profile", "map_facebook_profile", "normalize_profile"}
}

func linkingLogic(raw string) []string {
	return []string{"link_social_account", "unlink_social_account", "find_existing_user", "merge_accounts"}
}

func managementAPI(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/auth/social/connect", "method": "POST", "description": "Connect social account"},
		{"path": "/auth/social/disconnect", "method": "POST", "description": "Disconnect social account"},
		{"path": "/auth/social/accounts", "method": "GET", "description": "List connected accounts"},
	}
}
