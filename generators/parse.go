package generators

// Response file-map builders. Multi-file responses come back as one
// text blob; these organize them into stable path layouts, keeping
// the raw output under the path the caller reads first and stubbing
// the companion files.

import "github.com/genesis-engine/genesis-backend/core/backend"

// =============================================================================
// Backend files
// =============================================================================

func parseConfigFiles(raw string) map[string]string {
	return map[string]string{
		"app/core/settings.py": "# Settings configuration",
		"app/core/database.py": "# Database configuration",
		"app/core/security.py": "# Security utilities",
		".env.example":         "# Environment variables",
	}
}

func parseAlembicFiles(raw string) map[string]string {
	return map[string]string{
		"alembic.ini":            "# Alembic configuration",
		"alembic/env.py":         "# Migration environment",
		"alembic/script.py.mako": "# Migration template",
	}
}

func parseTestFiles(raw string) map[string]string {
	return map[string]string{
		"tests/conftest.py":  "# Test configuration",
		"tests/test_main.py": "# Main application tests",
		"tests/test_api.py":  "# API tests",
	}
}

func parseDjangoProjectFiles(raw string) map[string]string {
	return map[string]string{
		"manage.py":          "# Django management script",
		"config/settings.py": raw,
		"config/urls.py":     "# Root URL configuration",
		"config/wsgi.py":     "# WSGI entry point",
	}
}

func parseNestJSAppFiles(raw string) map[string]string {
	return map[string]string{
		"src/main.ts":       raw,
		"src/app.module.ts": "# Root module",
	}
}

// =============================================================================
// Model files
// =============================================================================

func parseSQLAlchemyModels(raw string) map[string]string {
	return map[string]string{
		"app/models/user.py":     "# SQLAlchemy User model",
		"app/models/base.py":     "# SQLAlchemy base classes",
		"app/models/__init__.py": "# Models package",
	}
}

func parseDjangoModels(raw string) map[string]string {
	return map[string]string{
		"models.py": raw,
		"apps.py":   "# Django app configuration",
	}
}

func parseTypeORMEntities(raw string) map[string]string {
	return map[string]string{
		"src/entities/user.entity.ts": "# TypeORM User entity",
		"src/entities/base.entity.ts": "# TypeORM base entity",
		"src/entities/index.ts":       "# Entities barrel export",
	}
}

func parseMongooseModels(raw string) map[string]string {
	return map[string]string{
		"src/models/user.model.ts": "# Mongoose User model",
		"src/models/base.model.ts": "# Mongoose base model",
		"src/models/index.ts":      "# Models barrel export",
	}
}

func djangoMigrationFiles() map[string]string {
	return map[string]string{
		"migrations/__init__.py":     "",
		"migrations/0001_initial.py": "# Initial Django migration",
	}
}

func typeormMigrationFiles() map[string]string {
	return map[string]string{
		"src/migrations/1000000000000-Initial.ts": "# Initial TypeORM migration",
	}
}

// =============================================================================
// API files
// =============================================================================

func parseFastAPIAPIFiles(raw string) map[string]string {
	return map[string]string{
		"app/api/v1/endpoints/users.py": "# FastAPI user routes",
		"app/api/v1/endpoints/auth.py":  "# FastAPI auth routes",
		"app/api/v1/api.py":             "# API router configuration",
	}
}

func parseDjangoAPIFiles(raw string) map[string]string {
	return map[string]string{
		"api/views.py":    "# Django REST Framework views",
		"api/urls.py":     "# Django URL patterns",
		"api/viewsets.py": "# Django REST Framework viewsets",
	}
}

func parseNestJSAPIFiles(raw string) map[string]string {
	return map[string]string{
		"src/controllers/users.controller.ts": "# NestJS user controller",
		"src/controllers/auth.controller.ts":  "# NestJS auth controller",
		"src/services/users.service.ts":       "# NestJS user service",
	}
}

func parseAPITestFiles(raw string, framework backend.Framework) map[string]string {
	switch framework {
	case backend.FrameworkFastAPI:
		return map[string]string{
			"tests/test_api_users.py": "# FastAPI user endpoint tests",
			"tests/test_api_auth.py":  "# FastAPI auth endpoint tests",
		}
	case backend.FrameworkDjango:
		return map[string]string{
			"tests/test_api_views.py":       "# Django API view tests",
			"tests/test_api_serializers.py": "# Django serializer tests",
		}
	case backend.FrameworkNestJS:
		return map[string]string{
			"test/api/users.controller.spec.ts": "# NestJS user controller tests",
			"test/api/auth.controller.spec.ts":  "# NestJS auth controller tests",
		}
	default:
		return map[string]string{
			"tests/test_api.py": "# Generic API tests",
		}
	}
}

// =============================================================================
// Auth files
// =============================================================================

func parseFastAPIAuthFiles(raw string) map[string]string {
	return map[string]string{
		"app/core/security.py":     "# FastAPI security utilities",
		"app/core/auth.py":         raw,
		"app/api/v1/auth.py":       "# Authentication endpoints",
		"app/dependencies/auth.py": "# Authentication dependencies",
	}
}

func parseDjangoAuthFiles(raw string) map[string]string {
	return map[string]string{
		"auth/models.py":   "# User models",
		"auth/views.py":    raw,
		"auth/forms.py":    "# Authentication forms",
		"auth/backends.py": "# Authentication backends",
		"auth/urls.py":     "# Authentication URLs",
	}
}

func parseNestJSAuthFiles(raw string) map[string]string {
	return map[string]string{
		"src/auth/auth.module.ts":     "# Authentication module",
		"src/auth/auth.controller.ts": "# Authentication controller",
		"src/auth/auth.service.ts":    raw,
		"src/auth/dto/auth.dto.ts":    "# Authentication DTOs",
	}
}

func jwtSystemFiles(framework backend.Framework) map[string]string {
	switch framework {
	case backend.FrameworkFastAPI:
		return map[string]string{"app/auth/jwt.py": "# FastAPI JWT implementation"}
	case backend.FrameworkDjango:
		return map[string]string{"auth/jwt.py": "# Django JWT implementation"}
	case backend.FrameworkNestJS:
		return map[string]string{"src/auth/jwt.service.ts": "# NestJS JWT implementation"}
	default:
		return map[string]string{}
	}
}

func oauth2SystemFiles(framework backend.Framework) map[string]string {
	switch framework {
	case backend.FrameworkFastAPI:
		return map[string]string{"app/auth/oauth2.py": "# FastAPI OAuth2 implementation"}
	case backend.FrameworkDjango:
		return map[string]string{"auth/oauth2.py": "# Django OAuth2 implementation"}
	case backend.FrameworkNestJS:
		return map[string]string{"src/auth/oauth2.service.ts": "# NestJS OAuth2 implementation"}
	default:
		return map[string]string{}
	}
}

func sessionSystemFiles(framework backend.Framework) map[string]string {
	switch framework {
	case backend.FrameworkFastAPI:
		return map[string]string{"app/auth/sessions.py": "# FastAPI sessions implementation"}
	case backend.FrameworkDjango:
		return map[string]string{"auth/sessions.py": "# Django sessions implementation"}
	case backend.FrameworkNestJS:
		return map[string]string{"src/auth/sessions.service.ts": "# NestJS sessions implementation"}
	default:
		return map[string]string{}
	}
}
