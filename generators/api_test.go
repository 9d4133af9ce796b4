package generators

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

func newAPIGenerator(t *testing.T) (*APIGenerator, *mockSender) {
	t.Helper()
	sender := &mockSender{}
	return NewAPIGenerator(sender, Config{Logger: testLogger()}), sender
}

func testAPIDesign() map[string]any {
	return testArchitecture()["api_design"].(map[string]any)
}

func TestGenerateEndpointsFastAPI(t *testing.T) {
	g, sender := newAPIGenerator(t)
	cfg := testConfig(t)

	files, err := g.GenerateEndpoints(context.Background(), testAPIDesign(), cfg)
	require.NoError(t, err)

	require.Len(t, sender.requests, 4)
	first := sender.requests[0]
	assert.Equal(t, apiSenderID, first.Sender)
	assert.Equal(t, protocol.TargetOpenAI, first.Target)
	assert.Equal(t, protocol.ActionCodeGeneration, first.Action)
	assert.Equal(t, "python", first.Language)
	assert.Equal(t, "fastapi", first.Framework)
	assert.Contains(t, first.Prompt, "/users")

	require.Len(t, files, 6)
	assert.Contains(t, files, "app/api/v1/endpoints/users.py")
	assert.Contains(t, files, "app/api/v1/endpoints/auth.py")
	assert.Contains(t, files, "app/api/v1/api.py")
	assert.Equal(t, "Generated code content", files["app/api/deps.py"])
	assert.Equal(t, "Generated code content", files["app/schemas/api.py"])
	assert.Equal(t, "Reasoning and analysis result", files["docs/openapi.json"])
}

func TestGenerateEndpointsDjango(t *testing.T) {
	g, sender := newAPIGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkDjango

	files, err := g.GenerateEndpoints(context.Background(), testAPIDesign(), cfg)
	require.NoError(t, err)

	require.Len(t, sender.requests, 4)
	first := sender.requests[0]
	assert.Equal(t, protocol.TargetClaude, first.Target)
	assert.Equal(t, protocol.ActionReasoning, first.Action)
	assert.Equal(t, djangoAPISystemPrompt, first.SystemPrompt)

	require.Len(t, files, 6)
	assert.Contains(t, files, "api/views.py")
	assert.Contains(t, files, "api/urls.py")
	assert.Contains(t, files, "api/viewsets.py")
	assert.Equal(t, "Generated code content", files["api/serializers.py"])
	assert.Equal(t, "Reasoning and analysis result", files["api/permissions.py"])
	assert.Equal(t, "Fast coding result", files["api/filters.py"])
}

func TestGenerateEndpointsNestJS(t *testing.T) {
	g, sender := newAPIGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkNestJS

	files, err := g.GenerateEndpoints(context.Background(), testAPIDesign(), cfg)
	require.NoError(t, err)

	require.Len(t, sender.requests, 4)
	first := sender.requests[0]
	assert.Equal(t, protocol.TargetDeepSeek, first.Target)
	assert.Equal(t, protocol.ActionFastCoding, first.Action)
	assert.Equal(t, "typescript", first.Language)

	require.Len(t, files, 6)
	assert.Contains(t, files, "src/controllers/users.controller.ts")
	assert.Contains(t, files, "src/controllers/auth.controller.ts")
	assert.Contains(t, files, "src/services/users.service.ts")
	assert.Equal(t, "Generated code content", files["src/dto/api.dto.ts"])
	assert.Equal(t, "Reasoning and analysis result", files["src/guards/api.guards.ts"])
	assert.Equal(t, "Fast coding result", files["src/interceptors/api.interceptors.ts"])
}

func TestGenerateEndpointsUnsupportedFramework(t *testing.T) {
	g, sender := newAPIGenerator(t)
	cfg := testConfig(t)
	cfg.Framework = backend.FrameworkExpress

	_, err := g.GenerateEndpoints(context.Background(), testAPIDesign(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedFramework)
	assert.Empty(t, sender.requests)
}

func TestGenerateAPITests(t *testing.T) {
	tests := []struct {
		framework backend.Framework
		language  string
		wantFile  string
	}{
		{backend.FrameworkFastAPI, "python", "tests/test_api_users.py"},
		{backend.FrameworkDjango, "python", "tests/test_api_views.py"},
		{backend.FrameworkNestJS, "typescript", "test/api/users.controller.spec.ts"},
		{backend.FrameworkExpress, "javascript", "tests/test_api.py"},
	}

	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			g, sender := newAPIGenerator(t)
			cfg := testConfig(t)
			cfg.Framework = tt.framework

			files, err := g.GenerateTests(context.Background(), testAPIDesign(), cfg)
			require.NoError(t, err)

			require.Len(t, sender.requests, 1)
			req := sender.requests[0]
			assert.Equal(t, protocol.TargetOpenAI, req.Target)
			assert.Equal(t, tt.language, req.Language)
			assert.Equal(t, fmt.Sprintf("%s_tests", tt.framework), req.Framework)
			assert.Contains(t, files, tt.wantFile)
		})
	}
}

func TestGenerateAPIDocumentation(t *testing.T) {
	g, sender := newAPIGenerator(t)
	cfg := testConfig(t)

	files, err := g.GenerateDocumentation(context.Background(), testAPIDesign(), cfg)
	require.NoError(t, err)

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetClaude, sender.requests[0].Target)

	require.Len(t, files, 4)
	assert.Equal(t, "Reasoning and analysis result", files["docs/api/README.md"])
	assert.Equal(t, "# Authentication guide", files["docs/api/authentication.md"])
	assert.Contains(t, files, "docs/api/endpoints.md")
	assert.Contains(t, files, "docs/api/errors.md")
}

func TestGenerateEndpointsSenderError(t *testing.T) {
	sender := &mockSender{err: fmt.Errorf("provider unavailable")}
	g := NewAPIGenerator(sender, Config{Logger: testLogger()})

	_, err := g.GenerateEndpoints(context.Background(), testAPIDesign(), testConfig(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider unavailable")
}
