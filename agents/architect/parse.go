package architect

// Response summarizers. The model's free-form answers vary; these
// produce the stable category sheets downstream consumers key on,
// deriving only what can be derived deterministically (feature lists,
// complexity counts). The raw answer text rides along unparsed.

// requirementsAnalysis summarizes a requirements answer into fixed
// backend concern categories plus a per-feature requirement map.
func requirementsAnalysis(raw string, features []string) map[string]any {
	featuresAnalysis := make(map[string]any, len(features))
	for _, feature := range features {
		featuresAnalysis[feature] = "Required"
	}

	return map[string]any{
		"data_storage":      []string{"Relational database", "File storage"},
		"api_requirements":  []string{"REST API", "Authentication", "CORS"},
		"auth_needs":        []string{"JWT tokens", "User management"},
		"performance":       []string{"Response time < 500ms", "Support 1000 concurrent users"},
		"scalability":       []string{"Horizontal scaling", "Database replication"},
		"integrations":      []string{"Third-party APIs", "Payment processing"},
		"security":          []string{"HTTPS", "Input validation", "Rate limiting"},
		"features_analysis": featuresAnalysis,
	}
}

// assessComplexity grades the analysis by how many features it covers.
func assessComplexity(analysis map[string]any) string {
	featuresAnalysis, _ := analysis["features_analysis"].(map[string]any)
	switch n := len(featuresAnalysis); {
	case n <= 3:
		return "low"
	case n <= 7:
		return "medium"
	default:
		return "high"
	}
}

// recommendPatterns selects architecture patterns based on the
// analysis contents.
func recommendPatterns(analysis map[string]any) []string {
	patterns := []string{"Repository Pattern", "Service Layer Pattern"}

	if _, ok := analysis["auth_needs"]; ok {
		patterns = append(patterns, "Authentication Middleware Pattern")
	}

	featuresAnalysis, _ := analysis["features_analysis"].(map[string]any)
	if len(featuresAnalysis) > 5 {
		patterns = append(patterns, "Modular Architecture Pattern")
	}

	return patterns
}

func technologyHints(analysis map[string]any) map[string]string {
	return map[string]string{
		"framework": "FastAPI for modern Python APIs",
		"database":  "PostgreSQL for relational data",
		"auth":      "JWT for stateless authentication",
		"caching":   "Redis for session and data caching",
	}
}

func apiDesign(raw string) map[string]any {
	return map[string]any{
		"openapi_version": "3.0.0",
		"base_url":        "/api/v1",
		"authentication":  "Bearer JWT",
		"endpoints": []map[string]string{
			{"path": "/auth/login", "method": "POST"},
			{"path": "/auth/register", "method": "POST"},
			{"path": "/users", "method": "GET"},
			{"path": "/users/{id}", "method": "GET"},
		},
	}
}

func endpointsSummary(raw string) []map[string]string {
	return []map[string]string{
		{"path": "/api/v1/auth/login", "method": "POST", "description": "User login"},
		{"path": "/api/v1/auth/register", "method": "POST", "description": "User registration"},
		{"path": "/api/v1/users", "method": "GET", "description": "List users"},
	}
}

func authDesign(raw string) map[string]any {
	return map[string]any{
		"method":           "JWT",
		"token_type":       "Bearer",
		"expiration":       "24 hours",
		"refresh_strategy": "Refresh tokens",
	}
}

func dataModels(raw string) []map[string]any {
	return []map[string]any{
		{
			"name": "User",
			"attributes": []map[string]any{
				{"name": "id", "type": "UUID", "primary_key": true},
				{"name": "email", "type": "String", "unique": true},
				{"name": "password_hash", "type": "String"},
				{"name": "created_at", "type": "DateTime"},
			},
		},
	}
}

func relationships(raw string) []map[string]string {
	return []map[string]string{
		{"from": "User", "to": "Profile", "type": "one_to_one"},
		{"from": "User", "to": "Post", "type": "one_to_many"},
	}
}

func databaseSchema(raw string) map[string]any {
	return map[string]any{
		"tables":      []string{"users", "profiles", "posts"},
		"indexes":     []string{"idx_users_email", "idx_posts_user_id"},
		"constraints": []string{"fk_posts_user_id"},
	}
}

func migrationPlan(raw string) []string {
	return []string{
		"Create users table",
		"Create profiles table",
		"Create posts table",
		"Add foreign key constraints",
		"Add indexes",
	}
}

func technologyRecommendations(raw string) map[string]string {
	return map[string]string{
		"framework": "FastAPI",
		"database":  "PostgreSQL",
		"orm":       "SQLAlchemy",
		"auth":      "JWT",
		"cache":     "Redis",
		"testing":   "pytest",
	}
}

func technologyAlternatives(raw string) map[string][]string {
	return map[string][]string{
		"framework": {"Django", "Flask", "NestJS"},
		"database":  {"MySQL", "MongoDB"},
		"orm":       {"Django ORM", "Peewee"},
		"auth":      {"OAuth2", "Session-based"},
	}
}

func technologyRationale(raw string) map[string]string {
	return map[string]string{
		"framework": "FastAPI chosen for high performance and automatic API documentation",
		"database":  "PostgreSQL for ACID compliance and JSON support",
		"orm":       "SQLAlchemy for mature ecosystem and flexibility",
	}
}

func serviceArchitecture(raw string) map[string]any {
	return map[string]any{
		"layers": []string{"Controller", "Service", "Repository"},
		"services": []map[string]any{
			{"name": "UserService", "responsibilities": []string{"User CRUD", "Authentication"}},
			{"name": "PostService", "responsibilities": []string{"Post management", "Content validation"}},
		},
		"patterns": []string{"Dependency Injection", "Repository Pattern"},
	}
}

func architecturalPatterns(raw string) []string {
	return []string{"Repository Pattern", "Service Layer", "Dependency Injection"}
}

func designPrinciples(raw string) []string {
	return []string{"Single Responsibility", "Dependency Inversion", "Open/Closed"}
}

func validationResult(raw string) map[string]any {
	return map[string]any{
		"overall_score":   "good",
		"consistency":     "high",
		"security":        "adequate",
		"performance":     "good",
		"maintainability": "high",
	}
}

func validationIssues(raw string) []string {
	return []string{
		"Missing input validation on some endpoints",
		"No rate limiting configured",
		"Authentication error handling could be improved",
	}
}

func validationRecommendations(raw string) []string {
	return []string{
		"Add comprehensive input validation",
		"Implement rate limiting middleware",
		"Enhance error handling with proper HTTP status codes",
		"Add API documentation with examples",
	}
}
