package django

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

type mockSender struct {
	requests []*protocol.Request
	err      error
}

func (m *mockSender) Send(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &protocol.Response{Result: cannedResult(req.Action), Model: "stub-model"}, nil
}

func cannedResult(action protocol.Action) string {
	switch action {
	case protocol.ActionCodeGeneration:
		return "Generated code content"
	case protocol.ActionReasoning:
		return "Reasoning and analysis result"
	case protocol.ActionFastCoding:
		return "Fast coding result"
	default:
		return "Generic LLM response"
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestAgent(t *testing.T) (*Django, *mockSender) {
	t.Helper()
	sender := &mockSender{}
	d, err := New(sender, Config{Logger: testLogger()})
	require.NoError(t, err)
	return d, sender
}

func testConfig() map[string]any {
	return map[string]any{
		"project_name": "django-test",
		"framework":    "django",
		"features":     []any{"api", "admin", "authentication"},
		"database":     map[string]any{"type": "postgresql", "orm": "django_orm"},
		"auth":         map[string]any{"method": "session"},
	}
}

func TestNew(t *testing.T) {
	d, _ := newTestAgent(t)

	assert.Equal(t, "django_generator", d.ID())
	assert.Equal(t, "Django Generator Agent", d.Name())
	assert.Equal(t, "generator", d.Type())
	assert.Len(t, d.Capabilities(), 8)
	assert.True(t, d.HasCapability(TaskGenerateRESTAPI))
}

func TestGenerateProject(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-project-1",
		Name: TaskGenerateProject,
		Params: map[string]any{
			"config":       testConfig(),
			"architecture": map[string]any{"entities": []any{"User", "Post"}},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["project_structure"])
	assert.Equal(t, "django", result.Metadata["framework"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetClaude, sender.requests[0].Target)
	assert.Equal(t, protocol.ActionReasoning, sender.requests[0].Action)
	assert.Equal(t, projectSystemPrompt, sender.requests[0].SystemPrompt)
	assert.Contains(t, sender.requests[0].Prompt, "django-test")

	settings := result.Result["settings_files"].(map[string]string)
	assert.Contains(t, settings, "base.py")
	assert.Contains(t, settings, "production.py")

	requirements := result.Result["requirements_files"].(map[string]string)
	assert.Contains(t, requirements["requirements/base.txt"], "Django>=4.2.0")

	assert.Equal(t, []string{"users", "core", "api"}, result.Result["apps_created"])

	metadata := result.Result["generation_metadata"].(map[string]any)
	assert.Equal(t, "4.2+", metadata["django_version"])
}

func TestGenerateProjectInvalidConfig(t *testing.T) {
	d, _ := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:     "django-project-2",
		Name:   TaskGenerateProject,
		Params: map[string]any{},
	})

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestGenerateModels(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-models-1",
		Name: TaskGenerateModels,
		Params: map[string]any{
			"data_models": []any{
				map[string]any{"name": "Article", "fields": []any{"id", "title", "body"}},
			},
			"relationships": []any{
				map[string]any{"from": "Article", "to": "User", "type": "many_to_one"},
			},
			"config": testConfig(),
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["models_code"])
	assert.Equal(t, "django", result.Metadata["framework"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetOpenAI, sender.requests[0].Target)
	assert.Equal(t, protocol.ActionCodeGeneration, sender.requests[0].Action)
	assert.Equal(t, "python", sender.requests[0].Language)
	assert.Equal(t, "django", sender.requests[0].Framework)

	classes := result.Result["model_classes"].([]string)
	assert.Contains(t, classes, "User")

	relationships := result.Result["relationships_implemented"].([]map[string]string)
	assert.Equal(t, "OneToOneField", relationships[0]["type"])
}

func TestGenerateViews(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-views-1",
		Name: TaskGenerateViews,
		Params: map[string]any{
			"api_design": map[string]any{"endpoints": []any{"/users"}},
			"models":     []any{"User"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Fast coding result", result.Result["views_code"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetDeepSeek, sender.requests[0].Target)
	assert.Equal(t, protocol.ActionFastCoding, sender.requests[0].Action)
	assert.Equal(t, "python", sender.requests[0].Language)
	assert.Contains(t, sender.requests[0].Prompt, "View Type: function")

	functions := result.Result["view_functions"].([]string)
	assert.Contains(t, functions, "user_list")
}

func TestGenerateViewsClassBased(t *testing.T) {
	d, sender := newTestAgent(t)

	d.Execute(context.Background(), agent.Task{
		ID:     "django-views-2",
		Name:   TaskGenerateViews,
		Params: map[string]any{"view_type": "class"},
	})

	require.Len(t, sender.requests, 1)
	assert.Contains(t, sender.requests[0].Prompt, "View Type: class")
}

func TestGenerateURLs(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-urls-1",
		Name: TaskGenerateURLs,
		Params: map[string]any{
			"views":      []any{"user_list", "user_detail"},
			"api_design": map[string]any{"version": "v1"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["urls_code"])
	assert.Equal(t, "django_urls", sender.requests[0].Framework)

	patterns := result.Result["url_patterns"].(map[string][]string)
	assert.Contains(t, patterns["main"], "/admin/")

	namespaces := result.Result["namespaces"].([]string)
	assert.Equal(t, []string{"admin", "api", "users"}, namespaces)
}

func TestGenerateAdmin(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-admin-1",
		Name: TaskGenerateAdmin,
		Params: map[string]any{
			"models":         []any{"User", "Profile", "Post"},
			"admin_features": []any{"search", "filters"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["admin_code"])
	assert.Equal(t, adminSystemPrompt, sender.requests[0].SystemPrompt)

	classes := result.Result["admin_classes"].([]string)
	assert.Contains(t, classes, "UserAdmin")

	inlines := result.Result["inlines"].([]string)
	assert.Contains(t, inlines, "ProfileInline")
}

func TestGenerateRESTAPI(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-drf-1",
		Name: TaskGenerateRESTAPI,
		Params: map[string]any{
			"models":     []any{"User", "Post"},
			"api_design": map[string]any{"version": "v1"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["drf_code"])
	assert.Equal(t, "django_rest_framework", sender.requests[0].Framework)

	serializers := result.Result["serializers"].([]string)
	assert.Contains(t, serializers, "UserSerializer")

	viewsets := result.Result["viewsets"].([]string)
	assert.Contains(t, viewsets, "UserViewSet")
}

func TestGenerateAuth(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:   "django-auth-1",
		Name: TaskGenerateAuth,
		Params: map[string]any{
			"auth_config": map[string]any{"method": "session"},
			"user_model":  map[string]any{"fields": []any{"email", "first_name"}},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["auth_code"])
	assert.Equal(t, authSystemPrompt, sender.requests[0].SystemPrompt)

	userModel := result.Result["user_model"].(map[string]string)
	assert.Equal(t, "CustomUser", userModel["model_name"])

	views := result.Result["auth_views"].([]string)
	assert.Contains(t, views, "LoginView")
}

func TestGenerateSettings(t *testing.T) {
	d, sender := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{
		ID:     "django-settings-1",
		Name:   TaskGenerateSettings,
		Params: map[string]any{"config": testConfig()},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["settings_code"])
	assert.Equal(t, settingsSystemPrompt, sender.requests[0].SystemPrompt)

	environments := result.Result["environment_configs"].([]string)
	assert.Contains(t, environments, "production")

	configs := result.Result["database_configs"].(map[string]string)
	assert.Contains(t, configs["production"], "PostgreSQL")
}

func TestSystemPromptOverride(t *testing.T) {
	sender := &mockSender{}
	d, err := New(sender, Config{SystemPrompt: "Custom Django reviewer", Logger: testLogger()})
	require.NoError(t, err)

	d.Execute(context.Background(), agent.Task{
		ID:     "override-1",
		Name:   TaskGenerateAdmin,
		Params: map[string]any{"models": []any{"User"}},
	})

	require.Len(t, sender.requests, 1)
	assert.Equal(t, "Custom Django reviewer", sender.requests[0].SystemPrompt)
}

func TestTaskFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("provider unavailable")}
	d, err := New(sender, Config{Logger: testLogger()})
	require.NoError(t, err)

	result := d.Execute(context.Background(), agent.Task{
		ID:     "failing",
		Name:   TaskGenerateViews,
		Params: map[string]any{},
	})

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "provider unavailable")
	assert.NotContains(t, result.Metadata, "framework")
}

func TestUnsupportedTask(t *testing.T) {
	d, _ := newTestAgent(t)

	result := d.Execute(context.Background(), agent.Task{ID: "t", Name: "generate_flask_app"})

	require.True(t, result.Success)
	assert.Contains(t, result.Result["message"], "Generic Django task")
	assert.Equal(t, "django", result.Metadata["framework"])
}
