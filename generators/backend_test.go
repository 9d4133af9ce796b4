package generators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

func newBackendGenerator(t *testing.T) (*BackendGenerator, *mockSender) {
	t.Helper()
	sender := &mockSender{}
	return NewBackendGenerator(sender, Config{Logger: testLogger()}), sender
}

func TestNewBackendGenerator(t *testing.T) {
	g, _ := newBackendGenerator(t)

	require.NotNil(t, g)
	assert.NotNil(t, g.api)
	assert.NotNil(t, g.models)
	assert.NotNil(t, g.auth)
}

func TestGenerateFastAPI(t *testing.T) {
	g, sender := newBackendGenerator(t)
	cfg := testConfig(t)

	result, err := g.Generate(context.Background(), cfg, testArchitecture(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, backend.FrameworkFastAPI, result.Framework)
	assert.Equal(t, cfg.Features, result.FeaturesImplemented)

	// Application entrypoint carries the generated code.
	assert.Equal(t, "Generated code content", result.Files["app/main.py"])

	// Project-level files.
	assert.Equal(t, "Fast coding result", result.Files["requirements.txt"])
	assert.Equal(t, "Reasoning and analysis result", result.Files["Dockerfile"])
	assert.Equal(t, "Generated code content", result.Files["docker-compose.yml"])

	// API files from the API generator.
	assert.Contains(t, result.Files, "app/api/v1/api.py")
	assert.Equal(t, "Generated code content", result.Files["app/api/deps.py"])
	assert.Contains(t, result.Files, "app/schemas/api.py")
	assert.Contains(t, result.Files, "docs/openapi.json")

	// Model files from the model generator.
	assert.Contains(t, result.Files, "app/models/user.py")
	assert.Equal(t, "Generated code content", result.Files["app/db/base.py"])
	assert.Contains(t, result.Files, "app/db/mixins.py")

	// Auth files for the configured JWT method.
	assert.Equal(t, "Generated code content", result.Files["app/core/auth.py"])
	assert.Contains(t, result.Files, "app/core/jwt.py")
	assert.Contains(t, result.Files, "app/core/passwords.py")

	// Configuration files overwrite earlier stubs for the same paths.
	assert.Equal(t, "# Settings configuration", result.Files["app/core/settings.py"])
	assert.Equal(t, "# Security utilities", result.Files["app/core/security.py"])
	assert.Contains(t, result.Files, ".env.example")

	// The database feature pulls in the Alembic setup, whose stubs
	// replace the files from the model generator.
	assert.Contains(t, result.Files, "alembic.ini")
	assert.Equal(t, "# Migration environment", result.Files["alembic/env.py"])

	// Tests, common files, and documentation.
	assert.Contains(t, result.Files, "tests/conftest.py")
	assert.Contains(t, result.Files, "tests/test_main.py")
	assert.Contains(t, result.Files, ".gitignore")
	assert.Contains(t, result.Files, "README.md")
	assert.Contains(t, result.Files, ".github/workflows/ci.yml")
	assert.Contains(t, result.Files, "docs/api.md")
	assert.Contains(t, result.Files, "docs/deployment.md")
	assert.Contains(t, result.Files, "docs/development.md")

	assert.Contains(t, result.Structure, "app/main.py")

	require.Len(t, result.NextSteps, 6)
	assert.Equal(t, "Configure JWT secret key in environment variables", result.NextSteps[5])

	assert.Equal(t, "BackendGenerator", result.Metadata.Generator)
	assert.Equal(t, backend.FrameworkFastAPI, result.Metadata.Framework)
	assert.Equal(t, len(result.Files), result.Metadata.TotalFiles)
	assert.WithinDuration(t, time.Now().UTC(), result.Metadata.GeneratedAt, 5*time.Second)

	assert.Len(t, sender.requests, 24)
}

func TestGenerateRequestRouting(t *testing.T) {
	g, sender := newBackendGenerator(t)

	_, err := g.Generate(context.Background(), testConfig(t), testArchitecture(), t.TempDir())
	require.NoError(t, err)

	// The entrypoint goes to openai as python/fastapi code generation.
	first := sender.requests[0]
	assert.Equal(t, backendSenderID, first.Sender)
	assert.Equal(t, protocol.TargetOpenAI, first.Target)
	assert.Equal(t, protocol.ActionCodeGeneration, first.Action)
	assert.Equal(t, "python", first.Language)
	assert.Equal(t, "fastapi", first.Framework)
	assert.Contains(t, first.Prompt, "Project: test-api")

	senders := map[string]bool{}
	for _, req := range sender.requests {
		senders[req.Sender] = true
	}
	assert.True(t, senders[backendSenderID])
	assert.True(t, senders[apiSenderID])
	assert.True(t, senders[modelSenderID])
	assert.True(t, senders[authSenderID])
}

func TestGenerateCreatesOutputDir(t *testing.T) {
	g, _ := newBackendGenerator(t)
	outputPath := filepath.Join(t.TempDir(), "generated", "backend")

	_, err := g.Generate(context.Background(), testConfig(t), testArchitecture(), outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGenerateDjango(t *testing.T) {
	g, _ := newBackendGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkDjango
	cfg.Database.ORM = backend.ORMDjango

	result, err := g.Generate(context.Background(), cfg, testArchitecture(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, backend.FrameworkDjango, result.Framework)

	assert.Contains(t, result.Files, "manage.py")
	assert.Equal(t, "Reasoning and analysis result", result.Files["config/settings.py"])
	assert.Equal(t, "Generated code content", result.Files["models.py"])
	assert.Contains(t, result.Files, "migrations/0001_initial.py")
	assert.Contains(t, result.Files, "admin.py")
	assert.Contains(t, result.Files, "api/views.py")
	assert.Equal(t, "Fast coding result", result.Files["api/filters.py"])
	assert.Equal(t, "Reasoning and analysis result", result.Files["auth/views.py"])
	assert.Contains(t, result.Files, "permissions.py")
	assert.Contains(t, result.Files, "signals.py")
	assert.Contains(t, result.Files, "README.md")

	assert.Contains(t, result.Structure, "manage.py")
	require.Len(t, result.NextSteps, 4)
	assert.Equal(t, "Update settings.py with your configuration", result.NextSteps[0])
}

func TestGenerateNestJS(t *testing.T) {
	g, _ := newBackendGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkNestJS
	cfg.Database.ORM = backend.ORMTypeORM

	result, err := g.Generate(context.Background(), cfg, testArchitecture(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, backend.FrameworkNestJS, result.Framework)

	assert.Equal(t, "Generated code content", result.Files["src/main.ts"])
	assert.Equal(t, "# Root module", result.Files["src/app.module.ts"])
	assert.Contains(t, result.Files, "src/controllers/users.controller.ts")
	assert.Contains(t, result.Files, "src/entities/user.entity.ts")
	assert.Equal(t, "Fast coding result", result.Files["src/data-source.ts"])
	assert.Contains(t, result.Files, "src/migrations/1000000000000-Initial.ts")
	assert.Equal(t, "Fast coding result", result.Files["src/auth/auth.service.ts"])
	assert.Contains(t, result.Files, "src/auth/strategies/jwt.strategy.ts")
	assert.Contains(t, result.Files, "src/auth/guards/jwt-auth.guard.ts")

	assert.Contains(t, result.Structure, "src/main.ts")
	require.Len(t, result.NextSteps, 4)
	assert.Equal(t, "Install dependencies with `npm install`", result.NextSteps[0])
}

func TestGenerateWithoutAuthOrDatabaseFeatures(t *testing.T) {
	g, _ := newBackendGenerator(t)
	cfg := testConfig(t)
	cfg.Features = []string{"api"}
	cfg.Auth = nil

	result, err := g.Generate(context.Background(), cfg, testArchitecture(), t.TempDir())
	require.NoError(t, err)

	assert.NotContains(t, result.Files, "app/core/jwt.py")
	assert.NotContains(t, result.Files, "app/core/passwords.py")
	assert.NotContains(t, result.Files, "app/dependencies/auth.py")
	assert.Len(t, result.NextSteps, 5)
}

func TestGenerateMinimalConfig(t *testing.T) {
	for _, framework := range []backend.Framework{
		backend.FrameworkFastAPI,
		backend.FrameworkDjango,
		backend.FrameworkNestJS,
	} {
		t.Run(string(framework), func(t *testing.T) {
			g, _ := newBackendGenerator(t)
			cfg, err := backend.New("minimal-api")
			require.NoError(t, err)
			cfg.Framework = framework

			result, err := g.Generate(context.Background(), cfg, map[string]any{}, t.TempDir())
			require.NoError(t, err)

			assert.Equal(t, framework, result.Framework)
			assert.Equal(t, framework, result.Metadata.Framework)
			assert.NotEmpty(t, result.Files)
		})
	}
}

func TestGenerateUnsupportedFramework(t *testing.T) {
	g, sender := newBackendGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkExpress
	outputPath := filepath.Join(t.TempDir(), "never-created")

	_, err := g.Generate(context.Background(), cfg, testArchitecture(), outputPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedFramework)
	assert.Contains(t, err.Error(), "express")

	// The framework check runs before any directory or request work.
	assert.Empty(t, sender.requests)
	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateInvalidConfig(t *testing.T) {
	g, sender := newBackendGenerator(t)
	cfg := &backend.Config{Framework: backend.FrameworkFastAPI}

	_, err := g.Generate(context.Background(), cfg, testArchitecture(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingProjectName)
	assert.Empty(t, sender.requests)
}

func TestGenerateSenderError(t *testing.T) {
	sender := &mockSender{err: fmt.Errorf("provider unavailable")}
	g := NewBackendGenerator(sender, Config{Logger: testLogger()})

	result, err := g.Generate(context.Background(), testConfig(t), testArchitecture(), t.TempDir())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "provider unavailable")
}
