package fastapi

// Response summarizers. Generated code rides along raw under its own
// result key; these produce the stable file and symbol inventories the
// orchestration layer keys on.

// projectStructure describes the generated project layout. The API
// directory is versioned per the project config.
func projectStructure(apiVersion string) map[string]any {
	return map[string]any{
		"app/": map[string]any{
			"main.py": "FastAPI application entry point",
			"core/": map[string]any{
				"config.py":   "Application configuration",
				"database.py": "Database setup",
				"security.py": "Security utilities",
			},
			"api/": map[string]any{
				apiVersion + "/": map[string]any{
					"endpoints/": "API endpoint routers",
					"deps.py":    "API dependencies",
				},
			},
			"models/":   "SQLAlchemy models",
			"schemas/":  "Pydantic schemas",
			"services/": "Business logic services",
			"utils/":    "Utility functions",
		},
		"tests/":           "Test modules",
		"alembic/":         "Database migrations",
		"requirements.txt": "Python dependencies",
		"Dockerfile":       "Container configuration",
	}
}

func routerFiles(raw string) map[string]string {
	return map[string]string{
		"auth.py":   "Authentication routes",
		"users.py":  "User management routes",
		"health.py": "Health check routes",
	}
}

func endpointsFromRoutes(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/api/v1/auth/login", "method": "POST", "description": "User login"},
		{"path": "/api/v1/users", "method": "GET", "description": "List users"},
		{"path": "/health", "method": "GET", "description": "Health check"},
	}
}

func authDependencies(raw string) map[string]any {
	return map[string]any{
		"get_current_user":        "Get current authenticated user",
		"get_current_active_user": "Get current active user",
		"get_current_superuser":   "Get current superuser",
	}
}

func schemaClasses(raw string) []string {
	return []string{"UserBase", "UserCreate", "UserUpdate", "User", "UserInDB"}
}

func validationRules(raw string) map[string][]string {
	return map[string][]string{
		"email":    {"email validation", "required"},
		"password": {"min length 8", "required"},
		"name":     {"max length 100"},
	}
}

func middlewareOrder(raw string) []string {
	return []string{"CORS", "Authentication", "Logging", "Error Handling"}
}

func middlewareConfig(raw string) map[string]any {
	return map[string]any{
		"cors_origins":  []string{"http://localhost:3000"},
		"allow_methods": []string{"GET", "POST", "PUT", "DELETE"},
		"allow_headers": []string{"*"},
	}
}

func authRoutes(raw string) []string {
	return []string{"/auth/login", "/auth/register", "/auth/logout", "/auth/refresh"}
}

func authUtilities(raw string) []string {
	return []string{"create_access_token", "verify_password", "get_password_hash"}
}

func modelClasses(raw string) []string {
	return []string{"User", "Profile", "Post"}
}

func modelRelationships(raw string) []map[string]string {
	return []map[string]string{
		{"from": "User", "to": "Profile", "type": "one_to_one"},
		{"from": "User", "to": "Post", "type": "one_to_many"},
	}
}

func databaseConfigSummary(raw string) map[string]string {
	return map[string]string{
		"engine_config":  "SQLAlchemy engine configuration",
		"session_config": "Database session configuration",
		"base_class":     "Declarative base class",
	}
}

func dependencyFunctions(raw string) []string {
	return []string{"get_db", "get_current_user", "get_settings"}
}

func configFiles(raw string) map[string]string {
	return map[string]string{
		"settings.py":  "# Application settings configuration",
		".env.example": "# Environment variables example",
		"database.py":  "# Database configuration",
		"logging.conf": "# Logging configuration",
	}
}
