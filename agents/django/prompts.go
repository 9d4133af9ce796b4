package django

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/backend"
)

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	projectSystemPrompt  = "You are a Django expert. Generate production-ready Django projects."
	adminSystemPrompt    = "You are a Django admin expert. Generate user-friendly admin interfaces."
	authSystemPrompt     = "You are a Django authentication expert. Generate secure auth systems."
	settingsSystemPrompt = "You are a Django deployment expert. Generate secure, production-ready settings."
)

func projectPrompt(cfg *backend.Config, architecture map[string]any) string {
	return fmt.Sprintf(`Generate a complete Django project structure with this configuration:

Project Name: %s
Description: %s
Features: %v
Database: %s
Authentication: %s

Architecture: %v

Generate Django project with:
1. Project configuration (settings.py split for environments)
2. Main URLs configuration
3. WSGI and ASGI application files
4. Django apps structure for each domain entity
5. Requirements files for different environments
6. Django management commands
7. Custom middleware if needed
8. Static files configuration
9. Media files configuration
10. Logging configuration

Project structure should follow Django best practices:
- Separate settings for dev/staging/production
- Apps organized by domain
- Proper static/media handling
- Database configuration
- Security settings

Return complete Django project structure with all necessary files.`,
		cfg.ProjectName, cfg.Description, cfg.Features, cfg.DatabaseType(), cfg.AuthMethod(),
		architecture)
}

func modelsPrompt(dataModels, relationships []any, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django models for this data schema:

Data Models: %v
Relationships: %v
Database: %s
Features: %v

Generate comprehensive Django models including:
1. Model classes with proper field types
2. Relationships (ForeignKey, OneToOneField, ManyToManyField)
3. Model Meta configuration (db_table, ordering, indexes)
4. Custom model methods and properties
5. String representations (__str__ methods)
6. Model managers for custom querysets
7. Validation methods (clean, clean_fields)
8. Model signals for business logic
9. Abstract base models if applicable
10. Migration-friendly field definitions

Django model best practices:
- Use appropriate field types for data
- Add help_text for documentation
- Use choices for enumerated fields
- Add proper indexes for performance
- Include audit fields (created_at, updated_at)
- Use related_name for reverse relationships

Return well-structured Django model classes.`,
		dataModels, relationships, cfg.DatabaseType(), cfg.Features)
}

func viewsPrompt(apiDesign map[string]any, models []any, viewType string) string {
	return fmt.Sprintf(`Generate Django views for this API design:

API Design: %v
Models: %v
View Type: %s

Generate comprehensive Django views including:
1. Function-based or class-based views as specified
2. CRUD operations for each model
3. Proper HTTP method handling
4. Request data validation
5. Error handling and responses
6. Authentication and permission checks
7. Pagination for list views
8. Filtering and searching capabilities
9. Custom business logic
10. API documentation with docstrings

For function-based views:
- Use decorators for common functionality
- Proper request method checking
- Clean separation of concerns

For class-based views:
- Inherit from appropriate base classes
- Override necessary methods
- Use mixins for common functionality

Return production-ready Django views.`, apiDesign, models, viewType)
}

func urlsPrompt(views []any, apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Django URL configuration:

Views: %v
API Design: %v

Generate comprehensive URL patterns including:
1. Main project URLs with app includes
2. App-specific URL patterns
3. API versioning support
4. Named URL patterns for reverse lookups
5. Parameter capture (pk, slug, etc.)
6. Regular expression patterns where needed
7. Namespace configuration
8. URL decorators for common patterns
9. Admin URLs integration
10. Static/media URLs for development

URL best practices:
- Use path() function for simple patterns
- Use re_path() for complex patterns
- Include trailing slashes consistently
- Use meaningful URL names
- Group related URLs logically

Return complete URL configuration.`, views, apiDesign)
}

func adminPrompt(models, adminFeatures []any) string {
	return fmt.Sprintf(`Generate Django admin interface:

Models: %v
Admin Features: %v

Generate comprehensive Django admin including:
1. ModelAdmin classes for each model
2. List display configuration
3. Search fields and filters
4. Inline editing for related models
5. Custom admin actions
6. Form field customization
7. Permissions and user management
8. Custom admin views if needed
9. Admin site customization
10. Bulk operations support

Admin features to include:
- Intuitive list displays
- Efficient search and filtering
- Proper field organization in forms
- Read-only fields where appropriate
- Custom widgets for complex fields
- Audit trail in admin

Return production-ready Django admin configuration.`, models, adminFeatures)
}

func restFrameworkPrompt(models []any, apiDesign map[string]any) string {
	return fmt.Sprintf(`Generate Django REST Framework API:

Models: %v
API Design: %v

Generate comprehensive DRF API including:
1. Serializers for each model with validation
2. ViewSets with CRUD operations
3. Custom API endpoints for business logic
4. Authentication and permission classes
5. Filtering, searching, and ordering
6. Pagination configuration
7. API documentation with swagger
8. Throttling and rate limiting
9. Custom parsers and renderers
10. API versioning support

DRF features to include:
- ModelSerializer with proper fields
- Custom validation methods
- Nested serializers for relationships
- ViewSet mixins for common patterns
- Custom permission classes
- Filter backends integration
- Proper HTTP status codes

Return production-ready DRF API.`, models, apiDesign)
}

func authPrompt(authConfig, userModel map[string]any) string {
	return fmt.Sprintf(`Generate Django authentication system:

Auth Config: %v
User Model: %v

Generate comprehensive Django authentication including:
1. Custom User model if needed
2. Authentication backends
3. Login/logout views and templates
4. User registration and activation
5. Password reset functionality
6. Profile management
7. Permission and group management
8. Social authentication integration
9. Two-factor authentication support
10. Session management and security

Authentication features:
- Secure password handling
- Email verification
- Account lockout protection
- Audit logging
- Custom user fields
- Profile picture handling

Return complete Django authentication system.`, authConfig, userModel)
}

func settingsPrompt(cfg *backend.Config) string {
	return fmt.Sprintf(`Generate Django settings configuration:

Project: %s
Database: %s
Features: %v
Environment: Production-ready

Generate Django settings including:
1. Base settings with common configuration
2. Development settings for local development
3. Production settings for deployment
4. Testing settings for test environment
5. Database configuration for each environment
6. Static and media files configuration
7. Security settings and middleware
8. Logging configuration
9. Cache configuration
10. Email settings

Settings best practices:
- Environment-specific configurations
- Secret key management
- Debug settings per environment
- Proper security headers
- Database connection pooling
- Comprehensive logging

Return complete Django settings structure.`,
		cfg.ProjectName, cfg.DatabaseType(), cfg.Features)
}
