package django

// Response summarizers plus the static environment files every generated
// project ships with. Generated code rides along raw under its own result
// key; these produce the stable file and symbol inventories the
// orchestration layer keys on.

func settingsFiles() map[string]string {
	return map[string]string{
		"base.py":        "# Base Django settings",
		"development.py": "# Development environment settings",
		"production.py":  "# Production environment settings",
		"testing.py":     "# Testing environment settings",
	}
}

func requirementsFiles() map[string]string {
	return map[string]string{
		"requirements/base.txt":        "Django>=4.2.0\npsycopg2-binary>=2.9.0",
		"requirements/development.txt": "-r base.txt\ndjango-debug-toolbar>=4.0.0",
		"requirements/production.txt":  "-r base.txt\ngunicorn>=20.1.0",
	}
}

func managementCommands() map[string]string {
	return map[string]string{
		"management/commands/seed_data.py":   "# Custom command to seed database",
		"management/commands/export_data.py": "# Custom command to export data",
	}
}

func djangoApps(raw string) []string {
	return []string{"users", "core", "api"}
}

func modelClasses(raw string) []string {
	return []string{"User", "Profile", "Post"}
}

func modelRelationships(raw string) []map[string]string {
	return []map[string]string{
		{"from": "Profile", "to": "User", "type": "OneToOneField"},
		{"from": "Post", "to": "User", "type": "ForeignKey"},
	}
}

func migrationInfo(raw string) []string {
	return []string{"Initial migration", "Add user profile", "Add post model"}
}

func adminRegistrations(raw string) []string {
	return []string{"UserAdmin", "ProfileAdmin", "PostAdmin"}
}

func viewFunctions(raw string) []string {
	return []string{"user_list", "user_detail", "user_create", "user_update"}
}

func viewURLPatterns(raw string) []map[string]string {
	return []map[string]string{
		{"pattern": "users/", "name": "user_list", "view": "user_list"},
		{"pattern": "users/<int:pk>/", "name": "user_detail", "view": "user_detail"},
	}
}

func viewPermissions(raw string) []string {
	return []string{"login_required", "permission_required", "user_passes_test"}
}

func allURLPatterns(raw string) map[string][]string {
	return map[string][]string{
		"main":  {"/admin/", "/api/", "/users/"},
		"users": {"/", "/<int:pk>/", "/create/"},
		"api":   {"/v1/users/", "/v1/auth/"},
	}
}

func urlNamespaces(raw string) []string {
	return []string{"admin", "api", "users"}
}

func adminClasses(raw string) []string {
	return []string{"UserAdmin", "ProfileAdmin", "PostAdmin"}
}

func adminActions(raw string) []string {
	return []string{"activate_users", "deactivate_users", "export_users"}
}

func adminInlines(raw string) []string {
	return []string{"ProfileInline", "PostInline"}
}

func drfSerializers(raw string) []string {
	return []string{"UserSerializer", "ProfileSerializer", "PostSerializer"}
}

func drfViewSets(raw string) []string {
	return []string{"UserViewSet", "ProfileViewSet", "PostViewSet"}
}

func drfPermissions(raw string) []string {
	return []string{"IsAuthenticated", "IsOwnerOrReadOnly", "IsAdminUser"}
}

func apiEndpoints(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/api/v1/users/", "method": "GET", "description": "List users"},
		{"path": "/api/v1/users/", "method": "POST", "description": "Create user"},
	}
}

func userModelInfo(raw string) map[string]string {
	return map[string]string{
		"model_name": "CustomUser",
		"fields":     "email, first_name, last_name, is_active",
		"manager":    "CustomUserManager",
	}
}

func authViews(raw string) []string {
	return []string{"LoginView", "LogoutView", "RegisterView", "PasswordResetView"}
}

func authForms(raw string) []string {
	return []string{"LoginForm", "RegisterForm", "PasswordResetForm"}
}

func authBackends(raw string) []string {
	return []string{"EmailBackend", "SocialAuthBackend"}
}

func environmentConfigs(raw string) []string {
	return []string{"development", "production", "testing", "staging"}
}

func securitySettings(raw string) []string {
	return []string{"SECURE_SSL_REDIRECT", "CSRF_COOKIE_SECURE", "SESSION_COOKIE_SECURE"}
}

func databaseConfigs(raw string) map[string]string {
	return map[string]string{
		"development": "SQLite for local development",
		"production":  "PostgreSQL for production",
		"testing":     "In-memory SQLite for tests",
	}
}
