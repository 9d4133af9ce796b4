package fastapi

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
)

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	middlewareSystemPrompt = "You are a FastAPI expert. Generate robust middleware following best practices."
	modelsSystemPrompt     = "You are a database expert. Generate efficient SQLAlchemy models."
)

func appPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate a complete FastAPI application with this configuration:

Project Name: %s
Description: %s
Features: %v
Database: %s
Authentication: %s
API Version: %s
CORS Origins: %v

Architecture: %v

Generate the main FastAPI application file (main.py) that includes:
1. FastAPI app initialization with metadata
2. CORS middleware configuration
3. Route registration
4. Error handling middleware
5. Health check endpoint
6. API documentation setup
7. Database connection setup if needed
8. Authentication middleware if needed
9. Logging configuration
10. Application lifecycle events

Make it production-ready with proper structure and error handling.
Return only the Python code.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), cfg.AuthMethod(),
		cfg.APIVersion, cfg.CORSOrigins, architecture)
}

func routesPrompt(apiDesign map[string]any, dataModels []any, authRequired bool) string {
	return fmt.Sprintf(`Generate FastAPI routes for this API design:

API Design: %v
Data Models: %v
Authentication Required: %t

Generate comprehensive FastAPI routes that include:
1. Router setup with tags and prefixes
2. Path parameters with proper types
3. Query parameters with validation
4. Request/response models using Pydantic
5. HTTP status codes for different scenarios
6. Error handling with HTTPException
7. Authentication dependencies if required
8. Input validation and sanitization
9. Proper docstrings and OpenAPI metadata
10. CRUD operations where applicable

Generate separate router files for different resource groups.
Return structured code for each router.`, apiDesign, dataModels, authRequired)
}

func schemasPrompt(dataModels []any, apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Pydantic schemas for this data model:

Data Models: %v
API Design: %v

Generate comprehensive Pydantic schemas including:
1. Base schemas for each entity
2. Create schemas (for POST requests)
3. Update schemas (for PUT/PATCH requests)
4. Response schemas (for GET responses)
5. List response schemas with pagination
6. Nested schemas for relationships
7. Validation rules and custom validators
8. Field descriptions for API documentation
9. Examples for OpenAPI documentation
10. Error response schemas

Use proper Pydantic v2 syntax with Field() and validation.
Return well-organized schema classes.`, dataModels, apiDesign)
}

func middlewarePrompt(cfg *backend.Config, features []string) string {
	return fmt.Sprintf(`Generate FastAPI middleware for this configuration:

Features: %v
CORS Origins: %v
Authentication: %s
Debug Mode: %t

Generate middleware for:
1. CORS configuration with proper origins
2. Request logging and timing
3. Error handling and exception catching
4. Rate limiting if needed
5. Security headers
6. Request ID generation
7. Authentication middleware if needed
8. Compression middleware
9. Database session management
10. Custom business logic middleware

Return production-ready middleware code.`, features, cfg.CORSOrigins, cfg.AuthMethod(), cfg.Debug)
}

func authPrompt(authConfig, userModel map[string]any) string {
	method := agent.StringOrDefault(authConfig, "method", "jwt")
	secretKey := agent.StringOrDefault(authConfig, "secret_key", "secret")
	algorithm := agent.StringOrDefault(authConfig, "algorithm", "HS256")
	expireMinutes := agent.IntOrDefault(authConfig, "access_token_expire_minutes", 30)

	return fmt.Sprintf(`Generate FastAPI authentication system:

Auth Method: %s
Secret Key: %s
Algorithm: %s
Token Expiration: %d minutes
User Model: %v

Generate complete authentication system including:
1. JWT token creation and verification
2. Password hashing utilities
3. User authentication dependencies
4. Login and registration endpoints
5. Token refresh mechanism
6. Password reset functionality
7. User permissions and roles if needed
8. OAuth2 integration if specified
9. Security utilities and helpers
10. Authentication error handling

Use FastAPI security utilities and follow OAuth2 patterns.`,
		method, secretKey, algorithm, expireMinutes, userModel)
}

func modelsPrompt(dataModels, relationships []any, databaseConfig map[string]any) string {
	return fmt.Sprintf(`Generate SQLAlchemy models for this database schema:

Data Models: %v
Relationships: %v
Database: %s

Generate comprehensive SQLAlchemy models including:
1. Table definitions with proper column types
2. Primary keys and foreign keys
3. Relationships (ForeignKey, relationship())
4. Indexes for performance
5. Constraints and validation
6. Model methods and properties
7. Serialization methods
8. Audit fields (created_at, updated_at)
9. Soft delete support if needed
10. Database migration support

Use SQLAlchemy 2.0 syntax with proper annotations.
Include Base class and database configuration.`,
		dataModels, relationships, agent.StringOrDefault(databaseConfig, "type", "postgresql"))
}

func dependenciesPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate FastAPI dependencies for this configuration:

Database: %s
Authentication: %s
Features: %v

Generate dependencies for:
1. Database session management
2. Current user authentication
3. Permission checking
4. Request validation
5. Rate limiting
6. Logging context
7. Configuration injection
8. External service clients
9. Background task management
10. Custom business logic dependencies

Use FastAPI Depends() properly with proper typing.`,
		cfg.DatabaseType(), cfg.AuthMethod(), cfg.Features)
}

func configFilesPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate configuration files for FastAPI project:

Project: %s
Database: %s
Features: %v

Generate:
1. settings.py with Pydantic BaseSettings
2. .env.example file
3. database.py for SQLAlchemy setup
4. logging configuration

Return structured configuration code.`, cfg.ProjectName, cfg.DatabaseType(), cfg.Features)
}

func requirementsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate requirements.txt for FastAPI project with:

Framework: FastAPI
Database: %s
Authentication: %s
Features: %v

Include all necessary dependencies with proper versions.`,
		cfg.DatabaseType(), cfg.AuthMethod(), cfg.Features)
}

func dockerfilePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate production-ready Dockerfile for FastAPI project:

Project: %s
Python Version: 3.11
Database: %s

Include:
- Multi-stage build
- Proper dependency caching
- Security best practices
- Health checks
- Non-root user`, cfg.ProjectName, cfg.DatabaseType())
}
