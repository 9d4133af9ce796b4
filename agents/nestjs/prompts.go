package nestjs

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/backend"
)

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	modulesSystemPrompt  = "You are a NestJS expert. Generate modular, scalable module structures."
	entitiesSystemPrompt = "You are a TypeORM expert. Generate efficient, well-typed entities."
	pipesSystemPrompt    = "You are a NestJS validation expert. Generate robust validation pipes."
)

func projectPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate a complete NestJS project structure with this configuration:

Project Name: %s
Description: %s
Features: %v
Database: %s
Authentication: %s

Architecture: %v

Generate NestJS project with:
1. Main application file (main.ts) with proper setup
2. App module as root module
3. Environment configuration module
4. Database configuration with TypeORM
5. Authentication module if required
6. Feature modules for each domain
7. Global exception filters
8. Global validation pipes
9. Logging configuration
10. Health check module

NestJS best practices:
- Modular architecture with feature modules
- Dependency injection throughout
- Proper TypeScript configuration
- Environment-based configuration
- Database connection management
- Global interceptors for logging/auth

Return complete NestJS project structure with TypeScript code.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), cfg.AuthMethod(),
		architecture)
}

func modulesPrompt(features, entities []any) string {
	return fmt.Sprintf(`Generate NestJS modules for these features:

Features: %v
Entities: %v

Generate comprehensive NestJS modules including:
1. Feature modules for each domain entity
2. Module decorators with proper imports/exports
3. Controller registration
4. Service provider registration
5. Repository injection setup
6. Module interdependencies
7. Global modules where appropriate
8. Dynamic module configuration
9. Custom providers and factories
10. Module testing setup

Module structure should include:
- Clear separation of concerns
- Proper dependency injection
- Testable module design
- Async module initialization if needed
- Environment-specific providers

Return well-structured NestJS modules with TypeScript.`, features, entities)
}

func controllersPrompt(apiDesign map[string]any, entities []any) string {
	return fmt.Sprintf(`Generate NestJS controllers for this API design:

API Design: %v
Entities: %v

Generate comprehensive NestJS controllers including:
1. Controller decorators with route prefixes
2. HTTP method decorators (Get, Post, Put, Delete)
3. Parameter decorators (Param, Body, Query)
4. DTO validation with pipes
5. Authentication guards where needed
6. Authorization decorators
7. Exception handling
8. Response transformation
9. API documentation with Swagger decorators
10. Request/response logging

Controller features:
- RESTful route design
- Proper HTTP status codes
- Input validation and transformation
- Error handling and responses
- Dependency injection of services
- Route-level guards and interceptors

Return production-ready NestJS controllers with TypeScript.`, apiDesign, entities)
}

func servicesPrompt(entities, businessLogic []any) string {
	return fmt.Sprintf(`Generate NestJS services for business logic:

Entities: %v
Business Logic: %v

Generate comprehensive NestJS services including:
1. Injectable service decorators
2. Repository injection for data access
3. CRUD operations with proper error handling
4. Business logic methods
5. Data transformation and validation
6. External API integration if needed
7. Caching implementation
8. Transaction management
9. Event emission for business events
10. Service testing methods

Service features:
- Single responsibility principle
- Dependency injection for repositories
- Proper error handling and exceptions
- Async/await for database operations
- Data validation and transformation
- Business rule enforcement

Return well-structured NestJS services with TypeScript.`, entities, businessLogic)
}

func entitiesPrompt(dataModels, relationships []any, databaseType string) string {
	return fmt.Sprintf(`Generate TypeORM entities for %s:

Data Models: %v
Relationships: %v
Database: %s

Generate comprehensive TypeORM entities including:
1. Entity decorators with table configuration
2. Column decorators with proper types
3. Primary key and auto-generation
4. Foreign key relationships
5. One-to-One, One-to-Many, Many-to-Many relationships
6. Entity indexes for performance
7. Column validation and constraints
8. Entity listeners and subscribers
9. Custom repository methods
10. Migration-friendly entity design

TypeORM features:
- Proper TypeScript typing
- Database-specific column types
- Relationship mapping with lazy loading
- Entity validation with class-validator
- Audit columns (created_at, updated_at)
- Soft delete support if needed

Return production-ready TypeORM entities with TypeScript.`,
		databaseType, dataModels, relationships, databaseType)
}

func authPrompt(authConfig map[string]any, authMethod string) string {
	return fmt.Sprintf(`Generate NestJS authentication system with %s:

Auth Config: %v
Auth Method: %s

Generate comprehensive NestJS authentication including:
1. Authentication module with strategies
2. JWT or Passport strategy implementation
3. Authentication guards for routes
4. Login/register controllers
5. User service for authentication
6. Password hashing utilities
7. Token generation and validation
8. Role-based authorization guards
9. Authentication decorators
10. Auth exception filters

Authentication features:
- Secure password handling with bcrypt
- JWT token management
- Route-level authentication guards
- Role and permission decorators
- Social authentication if specified
- Refresh token handling

Return complete NestJS authentication system with TypeScript.`,
		authMethod, authConfig, authMethod)
}

func dtosPrompt(entities []any, apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate NestJS DTOs for data validation:

Entities: %v
API Design: %v

Generate comprehensive DTOs including:
1. Create DTOs for POST requests
2. Update DTOs for PUT/PATCH requests
3. Response DTOs for GET responses
4. Query DTOs for filtering and pagination
5. Validation decorators from class-validator
6. Transformation decorators from class-transformer
7. Nested DTOs for complex objects
8. Partial DTOs for optional updates
9. API documentation decorators
10. Custom validation rules

DTO features:
- Strong TypeScript typing
- Comprehensive validation rules
- Proper error messages
- Transformation logic
- Swagger API documentation
- Reusable validation decorators

Return well-validated NestJS DTOs with TypeScript.`, entities, apiDesign)
}

func pipesPrompt(validationRequirements []any) string {
	return fmt.Sprintf(`Generate NestJS pipes for validation and transformation:

Validation Requirements: %v

Generate comprehensive NestJS pipes including:
1. Validation pipes for DTOs
2. Transform pipes for data conversion
3. Parse pipes for parameters
4. Custom validation pipes
5. Global validation configuration
6. Exception handling in pipes
7. Async validation support
8. Custom decorators for pipes
9. Performance-optimized pipes
10. Testing utilities for pipes

Pipe features:
- Strong type safety
- Comprehensive error handling
- Reusable validation logic
- Performance optimization
- Custom validation rules
- Proper error messages

Return production-ready NestJS pipes with TypeScript.`, validationRequirements)
}

func packageJSONPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate package.json for NestJS project:

Project: %s
Database: %s
Features: %v

Include all necessary dependencies for a production NestJS application.`,
		cfg.ProjectName, cfg.DatabaseType(), cfg.Features)
}
