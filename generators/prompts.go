package generators

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/backend"
)

// System prompts for the routed calls that need one.
const (
	sqlalchemySystemPrompt = "You are a SQLAlchemy expert. Generate efficient, well-designed models."
	prismaSystemPrompt     = "You are a Prisma expert. Generate efficient schema designs."
	djangoAPISystemPrompt  = "You are a Django REST Framework expert. Generate scalable API code."
	djangoAuthSystemPrompt = "You are a Django authentication expert. Generate secure, reusable auth systems."
)

// connectionURL renders the database connection URL, or empty when
// the config carries no database section.
func connectionURL(cfg *backend.Config) string {
	if cfg.Database == nil {
		return ""
	}
	return cfg.Database.ConnectionURL()
}

// ormName renders the configured ORM, falling back to the given label.
func ormName(cfg *backend.Config, fallback string) string {
	if cfg.Database != nil && cfg.Database.ORM != "" {
		return string(cfg.Database.ORM)
	}
	return fallback
}

// =============================================================================
// Backend prompts
// =============================================================================

func fastapiMainPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate a production-ready FastAPI main.py file with this configuration:

Project: %s
Description: %s
Features: %v
Database: %s
Authentication: %s
CORS Origins: %v
Debug: %v

Include:
1. FastAPI app initialization with proper metadata
2. CORS middleware configuration
3. Database connection setup
4. Router registration for API endpoints
5. Error handling middleware
6. Authentication middleware if needed
7. Health check endpoint
8. Startup and shutdown events
9. OpenAPI documentation configuration
10. Logging setup

Return only the Python code, production-ready and well-commented.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), cfg.AuthMethod(),
		cfg.CORSOrigins, cfg.Debug)
}

func fastapiConfigPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate FastAPI configuration files for:

Project: %s
Database: %s
Features: %v

Generate:
1. app/core/settings.py - Pydantic BaseSettings configuration
2. app/core/database.py - SQLAlchemy database setup
3. app/core/security.py - Security utilities
4. .env.example - Environment variables example

Return structured configuration code.`,
		cfg.ProjectName, connectionURL(cfg), cfg.Features)
}

func fastapiRequirementsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate requirements.txt for FastAPI project:

Framework: FastAPI (latest stable)
Database: %s
ORM: %s
Authentication: %s
Features: %v

Include all necessary dependencies with specific versions for production.`,
		cfg.DatabaseType(), ormName(cfg, "SQLAlchemy"), cfg.AuthMethod(), cfg.Features)
}

func fastapiDockerfilePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate production-ready Dockerfile for FastAPI project:

Project: %s
Python Version: 3.11
Database: %s

Requirements:
- Multi-stage build for optimization
- Security best practices
- Non-root user
- Health check
- Proper dependency caching
- Environment variable support`,
		cfg.ProjectName, cfg.DatabaseType())
}

func dockerComposePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate docker-compose.yml for development:

Backend: FastAPI
Database: %s
Features: %v

Include:
- Backend service with volume mounts for development
- Database service with persistent volume
- Environment variable configuration
- Health checks
- Network configuration
- Redis if caching is enabled`,
		cfg.DatabaseType(), cfg.Features)
}

func alembicConfigPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Alembic configuration for database migrations:

Database: %s
Models Location: app.models

Generate:
1. alembic.ini - Alembic configuration
2. alembic/env.py - Migration environment
3. alembic/script.py.mako - Migration template

Configure for async SQLAlchemy if needed.`,
		connectionURL(cfg))
}

func fastapiTestsPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate comprehensive tests for FastAPI application:

Config: %v
Architecture: %v

Generate:
1. tests/conftest.py - Test configuration and fixtures
2. tests/test_main.py - Main application tests
3. tests/test_api.py - API endpoint tests
4. tests/test_auth.py - Authentication tests if enabled
5. tests/test_models.py - Model tests

Use pytest with async support and TestClient.`,
		cfg.ToMap(), architecture)
}

func djangoProjectPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate Django project configuration:

Project: %s
Description: %s
Features: %v
Database: %s
Architecture: %v

Generate:
1. manage.py - Django management script
2. config/settings.py - Project settings split by environment
3. config/urls.py - Root URL configuration
4. config/wsgi.py - WSGI application entry point

Return production-ready Django project scaffolding.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), architecture)
}

func nestjsMainPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate NestJS application bootstrap:

Project: %s
Description: %s
Features: %v
Database: %s
Architecture: %v

Generate:
1. src/main.ts - Application entry point with global pipes and filters
2. src/app.module.ts - Root module with feature module imports

Return production-ready NestJS bootstrap code with TypeScript.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), architecture)
}

func gitignorePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate .gitignore for %s project with %s.
Include common patterns for Python/Node.js, IDEs, OS files, and secrets.`,
		cfg.Framework, cfg.Language())
}

func readmePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate comprehensive README.md for %s project:

Project: %s
Description: %s
Features: %v

Include:
- Project overview
- Features list
- Installation instructions
- API documentation links
- Development setup
- Deployment instructions
- Contributing guidelines`,
		cfg.Framework, cfg.ProjectName, cfg.Description, cfg.Features)
}

func ciWorkflowPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate GitHub Actions workflow for %s project:

Language: %s
Database: %s
Testing: pytest/jest

Include:
- Dependency caching
- Database setup for tests
- Code quality checks
- Test execution
- Docker build if applicable`,
		cfg.Framework, cfg.Language(), cfg.DatabaseType())
}

func docsAPIPrompt(cfg *backend.Config, apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate API documentation for %s project:

Project: %s
API Design: %v

Include:
- API overview
- Authentication guide
- Endpoint documentation
- Request/response examples
- Error codes`,
		cfg.Framework, cfg.ProjectName, apiDesign)
}

func docsDeploymentPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate deployment guide for %s project:

Framework: %s
Database: %s

Include:
- Environment setup
- Database configuration
- Docker deployment
- Cloud deployment options
- Monitoring setup`,
		cfg.Framework, cfg.Framework, cfg.DatabaseType())
}

func docsDevelopmentPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate development guide for %s project:

Framework: %s
Features: %v

Include:
- Local development setup
- Project structure explanation
- Code style guidelines
- Testing guidelines
- Contributing workflow`,
		cfg.Framework, cfg.Framework, cfg.Features)
}

// =============================================================================
// Model prompts
// =============================================================================

func sqlalchemyModelsPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate SQLAlchemy models for %s:

Data Models: %v
Database: %s
Project: %s

Generate comprehensive SQLAlchemy models including:
1. Model classes with proper inheritance from Base
2. Table definitions with appropriate names
3. Column definitions with proper types and constraints
4. Primary keys and foreign keys
5. Relationships (relationship(), back_populates)
6. Indexes for performance optimization
7. Unique constraints and check constraints
8. Model methods and properties
9. String representations (__str__, __repr__)
10. Audit fields (created_at, updated_at, deleted_at)

SQLAlchemy 2.0 features to use:
- Use modern column syntax with Mapped annotations
- Proper relationship configurations
- Database-specific column types
- Performance-optimized queries
- Async session support if needed

For each model provide:
- Clear table and column naming
- Proper type hints and annotations
- Relationship definitions with proper foreign keys
- Validation logic where appropriate
- Performance considerations (indexes, lazy loading)

Return production-ready SQLAlchemy models with proper imports.`,
		cfg.DatabaseType(), dataModels, cfg.DatabaseType(), cfg.ProjectName)
}

func djangoModelsPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django ORM models:

Data Models: %v
Database: %s
Project: %s

Generate comprehensive Django models including:
1. Model classes inheriting from models.Model
2. Field definitions with appropriate types
3. Relationship fields (ForeignKey, OneToOneField, ManyToManyField)
4. Model Meta class configuration
5. Custom model methods and properties
6. String representations (__str__ methods)
7. Model managers for custom querysets
8. Validation methods (clean, clean_fields)
9. Model signals for business logic
10. Abstract base models where applicable

Django model best practices:
- Use appropriate field types for data
- Add help_text for field documentation
- Use choices for enumerated fields
- Add proper indexes for performance
- Include audit fields with auto_now
- Use related_name for reverse relationships
- Implement custom querysets for complex queries

For each model provide:
- Clear field definitions with constraints
- Proper relationship configurations
- Custom methods for business logic
- Admin-friendly string representations
- Performance optimizations

Return production-ready Django models with proper imports.`,
		dataModels, cfg.DatabaseType(), cfg.ProjectName)
}

func typeormEntitiesPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate TypeORM entities for %s:

Data Models: %v
Database: %s
Project: %s

Generate comprehensive TypeORM entities including:
1. Entity decorators with table configuration
2. Column decorators with proper TypeScript types
3. Primary key and generated value columns
4. Foreign key relationships with proper decorators
5. One-to-One, One-to-Many, Many-to-Many relationships
6. Entity indexes for performance
7. Column validation and constraints
8. Entity listeners and subscribers
9. Custom repository methods
10. Migration-friendly entity design

TypeORM features to use:
- Proper TypeScript typing throughout
- Database-specific column types
- Relationship mapping with lazy loading options
- Entity validation with class-validator
- Audit columns with automatic timestamps
- Soft delete support where appropriate

For each entity provide:
- Clear table and column naming
- Proper TypeScript interfaces
- Relationship definitions with cascade options
- Validation decorators
- Performance considerations

Return production-ready TypeORM entities with TypeScript.`,
		cfg.DatabaseType(), dataModels, cfg.DatabaseType(), cfg.ProjectName)
}

func prismaSchemaPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Prisma schema:

Data Models: %v
Database: %s
Project: %s

Generate comprehensive Prisma schema including:
1. Generator and datasource configuration
2. Model definitions with proper field types
3. Relationship definitions with references
4. Unique constraints and indexes
5. Enum definitions for choice fields
6. Custom field attributes
7. Database-specific features
8. Schema validation rules
9. Migration configuration
10. Client generation setup

Prisma features to use:
- Modern Prisma schema syntax
- Proper field type mapping
- Relationship constraints
- Index optimization
- Enum definitions
- Custom attributes

Return complete Prisma schema file.`,
		dataModels, cfg.DatabaseType(), cfg.ProjectName)
}

func mongooseModelsPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Mongoose models for MongoDB:

Data Models: %v
Project: %s

Generate comprehensive Mongoose models including:
1. Schema definitions with proper types
2. Schema validation rules
3. Virtual fields and methods
4. Pre and post middleware hooks
5. Static methods and query helpers
6. Index definitions for performance
7. Plugin integration
8. Population configuration for references
9. Custom validation functions
10. Schema options and configuration

Mongoose features to use:
- Modern Mongoose schema syntax
- TypeScript integration
- Validation and sanitization
- Middleware for business logic
- Population for references
- Index optimization

Return production-ready Mongoose models with TypeScript.`,
		dataModels, cfg.ProjectName)
}

func sqlalchemyBasePrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate SQLAlchemy base configuration:

Database: %s
Connection URL: %s

Generate:
1. Declarative base class
2. Database engine configuration
3. Session factory setup
4. Connection management
5. Base model with common fields

Return complete SQLAlchemy base setup.`,
		cfg.DatabaseType(), connectionURL(cfg))
}

const sqlalchemyMixinsPrompt = `Generate SQLAlchemy mixins for common functionality:

Generate mixins for:
1. Timestamp fields (created_at, updated_at)
2. Soft delete functionality
3. UUID primary keys
4. Audit trail (who created/updated)
5. Serialization methods

Return reusable SQLAlchemy mixins.`

func alembicMigrationsPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Alembic migration configuration:

Models: %v
Database: %s

Generate:
1. Alembic configuration file
2. Environment setup for migrations
3. Initial migration script
4. Migration script template

Return complete Alembic setup.`,
		dataModels, cfg.DatabaseType())
}

const djangoManagersPrompt = `Generate Django model managers:

Generate managers for:
1. Active/inactive object filtering
2. Custom querysets with business logic
3. Soft delete functionality
4. Common query patterns
5. Performance-optimized queries

Return reusable Django managers.`

func djangoAdminPrompt(dataModels []any) string {
	return fmt.Sprintf(`Generate Django admin configuration:

Models: %v

Generate admin classes with:
1. List display configuration
2. Search and filter fields
3. Inline editing for related models
4. Custom admin actions
5. Form customization

Return comprehensive Django admin setup.`,
		dataModels)
}

func typeormConfigPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate TypeORM configuration:

Database: %s
Connection: %s

Generate TypeORM configuration with:
1. Data source configuration
2. Entity registration
3. Migration settings
4. Connection options
5. Logging configuration

Return complete TypeORM setup.`,
		cfg.DatabaseType(), connectionURL(cfg))
}

func typeormRepositoriesPrompt(dataModels []any) string {
	return fmt.Sprintf(`Generate TypeORM custom repositories:

Models: %v

Generate repositories with:
1. Custom query methods
2. Business logic encapsulation
3. Performance-optimized queries
4. Transaction support
5. Error handling

Return TypeORM repositories with TypeScript.`,
		dataModels)
}

func prismaSeedPrompt(dataModels []any) string {
	return fmt.Sprintf(`Generate Prisma seed file:

Models: %v

Generate seed data with:
1. Sample data for each model
2. Proper relationships
3. Realistic test data
4. Database reset functionality
5. Environment-specific data

Return complete Prisma seed script with TypeScript.`,
		dataModels)
}

func modelTestsPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate model tests for %s:

Models: %v
ORM: %s

Generate comprehensive model tests including:
1. Unit tests for each model
2. Relationship tests
3. Validation tests
4. Custom method tests
5. Database constraint tests
6. Performance tests

Return complete test suite for models.`,
		ormName(cfg, "default ORM"), dataModels, ormName(cfg, "SQLAlchemy"))
}

func modelFactoriesPrompt(dataModels []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate model factories for testing:

Models: %v
Framework: %s

Generate factory classes for:
1. Creating test instances
2. Relationship handling
3. Realistic fake data
4. Bulk data creation
5. Custom factory methods

Return comprehensive factory classes.`,
		dataModels, cfg.Framework)
}

// =============================================================================
// API prompts
// =============================================================================

func fastapiAPIPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate FastAPI API implementation:

API Design: %v
Project Config: %v

Generate comprehensive FastAPI API including:
1. Router setup with proper prefixes and tags
2. Route handlers for all endpoints
3. Path and query parameter validation
4. Request body validation with Pydantic
5. Response models and status codes
6. Authentication dependencies where needed
7. Error handling with HTTPException
8. OpenAPI documentation decorators
9. CORS configuration if specified
10. Rate limiting and security headers

For each endpoint provide:
- Proper HTTP method and path
- Input validation and typing
- Business logic placeholder
- Error handling
- Response formatting
- API documentation

Generate separate router files for different resource groups.
Return well-structured FastAPI code with proper typing.`,
		apiDesign, cfg.ToMap())
}

func djangoAPIPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django REST Framework API implementation:

API Design: %v
Project Config: %v

Generate comprehensive Django API including:
1. Django REST Framework viewsets
2. Serializers for request/response validation
3. URL patterns with proper routing
4. Permission classes for authentication
5. Filter backends for searching/filtering
6. Pagination configuration
7. Custom API views for business logic
8. Exception handling
9. API documentation with drf-spectacular
10. Throttling and rate limiting

For each model/resource provide:
- ModelSerializer with validation
- ModelViewSet with CRUD operations
- Custom actions if needed
- Permission handling
- URL routing configuration

Generate separate files for serializers, views, and URLs.
Return production-ready Django REST code.`,
		apiDesign, cfg.ToMap())
}

func nestjsAPIPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate NestJS API implementation:

API Design: %v
Project Config: %v

Generate comprehensive NestJS API including:
1. Controllers with proper decorators
2. Services for business logic
3. DTOs for request/response validation
4. Guards for authentication/authorization
5. Pipes for data transformation
6. Interceptors for logging/transformation
7. Exception filters for error handling
8. Swagger decorators for documentation
9. Module organization
10. Dependency injection setup

For each resource provide:
- Controller with HTTP method decorators
- Service with business logic
- DTOs with validation decorators
- Guards for route protection
- Proper TypeScript typing

Generate separate files for controllers, services, DTOs, and modules.
Return production-ready NestJS code with TypeScript.`,
		apiDesign, cfg.ToMap())
}

func fastapiDependenciesPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate FastAPI dependency functions for:

Config: %v

Generate dependencies for:
1. Database session management
2. Current user authentication
3. Permission checking
4. Rate limiting
5. Request validation
6. Logging context
7. Configuration injection
8. Background tasks

Return reusable dependency functions with proper typing.`,
		cfg.ToMap())
}

func fastapiSchemasPrompt(apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Pydantic schemas for FastAPI:

API Design: %v

Generate schemas for:
1. Request bodies (Create, Update)
2. Response models (Read, List)
3. Query parameters
4. Error responses
5. Nested objects
6. Validation rules

Include proper validation and documentation.`,
		apiDesign)
}

func openapiSpecPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate OpenAPI 3.0 specification:

API Design: %v
Project: %s

Generate complete OpenAPI spec with:
1. API information and metadata
2. Server configuration
3. Path definitions with operations
4. Schema definitions
5. Security schemes
6. Response definitions
7. Parameter definitions
8. Example values

Return valid OpenAPI JSON specification.`,
		apiDesign, cfg.ProjectName)
}

func djangoSerializersPrompt(apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Django REST Framework serializers:

API Design: %v

Generate serializers for:
1. Model serializers for CRUD operations
2. Custom validation methods
3. Nested serializers for relationships
4. Read-only and write-only fields
5. Method fields for computed values
6. Custom to_representation methods

Return comprehensive DRF serializers.`,
		apiDesign)
}

func djangoPermissionsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django REST Framework permissions:

Config: %v

Generate permission classes for:
1. Object-level permissions
2. Model-level permissions
3. Custom business logic permissions
4. Role-based permissions
5. Owner-only permissions

Return reusable permission classes.`,
		cfg.ToMap())
}

func djangoFiltersPrompt(apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Django REST Framework filters:

API Design: %v

Generate filter classes for:
1. Search filters
2. Ordering filters
3. Field-based filters
4. Date range filters
5. Custom filter logic

Return comprehensive filter backends.`,
		apiDesign)
}

func nestjsDTOsPrompt(apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate NestJS DTOs with validation:

API Design: %v

Generate DTOs for:
1. Create operations
2. Update operations
3. Query parameters
4. Response formatting
5. Validation rules
6. Transformation logic

Return comprehensive NestJS DTOs with TypeScript.`,
		apiDesign)
}

func nestjsGuardsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate NestJS guards for security:

Config: %v

Generate guards for:
1. JWT authentication
2. Role-based authorization
3. Resource ownership
4. Rate limiting
5. API key validation

Return comprehensive NestJS guards with TypeScript.`,
		cfg.ToMap())
}

func nestjsInterceptorsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate NestJS interceptors:

Config: %v

Generate interceptors for:
1. Response transformation
2. Request logging
3. Error handling
4. Performance monitoring
5. Cache management

Return comprehensive NestJS interceptors with TypeScript.`,
		cfg.ToMap())
}

func apiTestsPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate API tests for %s:

API Design: %v
Framework: %s

Generate comprehensive API tests including:
1. Unit tests for each endpoint
2. Integration tests for workflows
3. Authentication tests
4. Error handling tests
5. Performance tests
6. Security tests

Return complete test suite with proper assertions.`,
		cfg.Framework, apiDesign, cfg.Framework)
}

func apiDocumentationPrompt(apiDesign map[string]any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate API documentation for %s:

API Design: %v
Framework: %s

Generate documentation including:
1. API overview and introduction
2. Authentication guide
3. Endpoint documentation with examples
4. Error codes and responses
5. SDK and client library guides
6. Rate limiting information
7. Changelog and versioning

Return comprehensive API documentation in Markdown.`,
		cfg.ProjectName, apiDesign, cfg.Framework)
}

// =============================================================================
// Auth prompts
// =============================================================================

func fastapiAuthPrompt(authCfg *backend.AuthConfig) string {
	return fmt.Sprintf(`Generate FastAPI authentication system:

Auth Method: %s
Secret Key: %s
Algorithm: %s
Token Expiry: %d minutes

Generate comprehensive FastAPI authentication including:
1. JWT token creation and validation utilities
2. Password hashing with bcrypt
3. Authentication dependencies for route protection
4. Login and registration endpoints
5. Token refresh mechanism
6. User authentication middleware
7. Permission-based decorators
8. OAuth2 password bearer implementation
9. Security utilities and helpers
10. Error handling for authentication failures

Files to generate:
- app/core/security.py - Security utilities
- app/core/auth.py - Authentication logic
- app/api/auth.py - Authentication endpoints
- app/dependencies/auth.py - Authentication dependencies

Return production-ready FastAPI authentication code.`,
		authCfg.Method, authCfg.SecretKey, authCfg.Algorithm, authCfg.AccessTokenExpireMinutes)
}

func djangoAuthPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django authentication system:

Auth Method: %s
User Model: Custom User model if needed
Features: %v

Generate comprehensive Django authentication including:
1. Custom User model if needed
2. Authentication backends
3. Login/logout views and forms
4. User registration and activation
5. Password reset functionality
6. Profile management views
7. Permission and group management
8. Social authentication integration if specified
9. Session management
10. Authentication middleware and decorators

Files to generate:
- models.py - User model and profile
- views.py - Authentication views
- forms.py - Authentication forms
- backends.py - Custom authentication backends
- decorators.py - Permission decorators

Return production-ready Django authentication code.`,
		authConfig(cfg).Method, cfg.Features)
}

func nestjsAuthPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate NestJS authentication system:

Auth Method: %s
Strategy: Passport.js integration
Guards: JWT and Local guards

Generate comprehensive NestJS authentication including:
1. Authentication module with providers
2. Passport strategies (Local, JWT)
3. Authentication guards for routes
4. Authentication controller with login/register
5. User service for authentication logic
6. JWT token management
7. Role-based authorization guards
8. Authentication decorators
9. Password hashing service
10. Authentication exception filters

Files to generate:
- auth.module.ts - Authentication module
- auth.controller.ts - Authentication endpoints
- auth.service.ts - Authentication business logic
- strategies/ - Passport strategies
- guards/ - Authentication guards
- decorators/ - Auth decorators

Return production-ready NestJS authentication with TypeScript.`,
		authConfig(cfg).Method)
}

func jwtUtilitiesPrompt(cfg *backend.Config, authCfg *backend.AuthConfig) string {
	return fmt.Sprintf(`Generate JWT utilities for %s:

Secret Key: %s
Algorithm: %s
Access Token Expiry: %d minutes
Refresh Token Expiry: %d days

Generate JWT utilities including:
1. Token creation functions
2. Token verification and validation
3. Token refresh logic
4. Payload extraction utilities
5. Token blacklisting support
6. Error handling for invalid tokens

Return comprehensive JWT utility functions.`,
		cfg.Framework, authCfg.SecretKey, authCfg.Algorithm,
		authCfg.AccessTokenExpireMinutes, authCfg.RefreshTokenExpireDays)
}

func oauth2UtilitiesPrompt(cfg *backend.Config, authCfg *backend.AuthConfig) string {
	providers := authCfg.OAuthProviders
	if len(providers) == 0 {
		providers = []string{"google", "github"}
	}

	return fmt.Sprintf(`Generate OAuth2 utilities for %s:

Providers: %v

Generate OAuth2 utilities including:
1. Provider configurations
2. Authorization URL generation
3. Token exchange handlers
4. User profile fetching
5. Account linking logic
6. Provider-specific error handling

Return comprehensive OAuth2 utility functions.`,
		cfg.Framework, providers)
}

func passwordSecurityPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate password security utilities for %s:

Generate password security including:
1. Password hashing with bcrypt/argon2
2. Password strength validation
3. Password history tracking
4. Secure password generation
5. Password reset token management
6. Account lockout protection
7. Breach detection integration

Return comprehensive password security utilities.`,
		cfg.Framework)
}

const djangoPermissionSystemPrompt = `Generate Django permission system:

Generate permissions including:
1. Custom permission classes
2. Object-level permissions
3. Group-based permissions
4. Role-based access control
5. Permission decorators
6. Permission templates and mixins

Return Django permission system.`

const djangoSignalsPrompt = `Generate Django authentication signals:

Generate signals for:
1. User registration
2. User login/logout
3. Password changes
4. Profile updates
5. Account activation
6. Permission changes

Return Django signal handlers.`

func nestjsStrategiesPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate NestJS Passport strategies:

Auth Method: %s

Generate strategies for:
1. Local strategy for username/password
2. JWT strategy for token validation
3. OAuth strategies if needed
4. Custom validation logic
5. Error handling

Return NestJS Passport strategies with TypeScript.`,
		authConfig(cfg).Method)
}

const nestjsAuthGuardsPrompt = `Generate NestJS authentication guards:

Generate guards for:
1. JWT authentication guard
2. Local authentication guard
3. Role-based authorization guard
4. Permission-based guard
5. Optional authentication guard
6. Rate limiting guard

Return NestJS guards with TypeScript.`

func authTestsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate authentication tests for %s:

Auth Method: %s
Framework: %s

Generate tests for:
1. User registration and login
2. Token generation and validation
3. Password hashing and verification
4. Permission and authorization
5. Authentication middleware
6. Error handling scenarios

Return comprehensive authentication test suite.`,
		cfg.Framework, authConfig(cfg).Method, cfg.Framework)
}

func authDocumentationPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate authentication documentation for %s:

Auth Method: %s
Features: %v

Generate documentation for:
1. Authentication setup and configuration
2. API endpoints and usage examples
3. Token management and refresh
4. Permission and authorization guide
5. Security best practices
6. Troubleshooting guide

Return comprehensive authentication documentation in Markdown.`,
		cfg.Framework, authConfig(cfg).Method, cfg.Features)
}
