package nestjs

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

func newTestAgent(t *testing.T) (*NestJS, *mockSender) {
	t.Helper()
	sender := &mockSender{}
	n, err := New(sender, Config{Logger: testLogger()})
	require.NoError(t, err)
	return n, sender
}

func testConfig() map[string]any {
	return map[string]any{
		"project_name": "nestjs-test",
		"framework":    "nestjs",
		"features":     []any{"api", "authentication"},
		"database":     map[string]any{"type": "postgresql", "orm": "typeorm"},
		"auth":         map[string]any{"method": "jwt"},
	}
}

func TestNew(t *testing.T) {
	n, _ := newTestAgent(t)

	assert.Equal(t, "nestjs_generator", n.ID())
	assert.Equal(t, "NestJS Generator Agent", n.Name())
	assert.Equal(t, "generator", n.Type())
	assert.Len(t, n.Capabilities(), 8)
	assert.True(t, n.HasCapability(TaskGenerateControllers))
}

func TestGenerateProject(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-project-1",
		Name: TaskGenerateProject,
		Params: map[string]any{
			"config":       testConfig(),
			"architecture": map[string]any{"entities": []any{"User"}},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["project_structure"])
	assert.Equal(t, "nestjs", result.Metadata["framework"])

	// Project skeleton plus package.json.
	require.Len(t, sender.requests, 2)
	assert.Equal(t, protocol.TargetOpenAI, sender.requests[0].Target)
	assert.Equal(t, protocol.ActionCodeGeneration, sender.requests[0].Action)
	assert.Equal(t, "typescript", sender.requests[0].Language)
	assert.Equal(t, "nestjs", sender.requests[0].Framework)
	assert.Equal(t, protocol.TargetDeepSeek, sender.requests[1].Target)
	assert.Equal(t, "json", sender.requests[1].Language)

	assert.Equal(t, "Fast coding result", result.Result["package_json"])

	configFiles := result.Result["config_files"].(map[string]string)
	assert.Contains(t, configFiles, "nest-cli.json")
	assert.Contains(t, configFiles, "ormconfig.json")

	dockerFiles := result.Result["docker_files"].(map[string]string)
	assert.Contains(t, dockerFiles, "Dockerfile")

	modules := result.Result["modules_created"].([]string)
	assert.Contains(t, modules, "AppModule")

	metadata := result.Result["generation_metadata"].(map[string]any)
	assert.Equal(t, "10.0+", metadata["nestjs_version"])
	assert.Equal(t, "18+", metadata["node_version"])
}

func TestGenerateProjectInvalidConfig(t *testing.T) {
	n, _ := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:     "nestjs-project-2",
		Name:   TaskGenerateProject,
		Params: map[string]any{},
	})

	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestGenerateModules(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-modules-1",
		Name: TaskGenerateModules,
		Params: map[string]any{
			"features": []any{"users", "auth"},
			"entities": []any{"User", "Post"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["modules_code"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetClaude, sender.requests[0].Target)
	assert.Equal(t, modulesSystemPrompt, sender.requests[0].SystemPrompt)

	classes := result.Result["module_classes"].([]string)
	assert.Contains(t, classes, "UsersModule")

	providers := result.Result["providers"].(map[string][]string)
	assert.Contains(t, providers["AuthModule"], "JwtStrategy")
}

func TestGenerateControllers(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-controllers-1",
		Name: TaskGenerateControllers,
		Params: map[string]any{
			"api_design": map[string]any{"endpoints": []any{"/users"}},
			"entities":   []any{"User"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Fast coding result", result.Result["controllers_code"])
	assert.Equal(t, "nestjs", result.Metadata["framework"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetDeepSeek, sender.requests[0].Target)
	assert.Equal(t, protocol.ActionFastCoding, sender.requests[0].Action)
	assert.Equal(t, "typescript", sender.requests[0].Language)

	routes := result.Result["routes"].([]map[string]string)
	assert.Equal(t, "/users", routes[0]["path"])

	guards := result.Result["guards_used"].([]string)
	assert.Contains(t, guards, "JwtAuthGuard")
}

func TestGenerateServices(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-services-1",
		Name: TaskGenerateServices,
		Params: map[string]any{
			"entities":       []any{"User"},
			"business_logic": []any{"user registration"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["services_code"])
	assert.Equal(t, "nestjs_services", sender.requests[0].Framework)

	methods := result.Result["methods"].(map[string][]string)
	assert.Contains(t, methods["UsersService"], "findAll")
}

func TestGenerateEntities(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-entities-1",
		Name: TaskGenerateEntities,
		Params: map[string]any{
			"data_models": []any{map[string]any{"name": "User"}},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["entities_code"])

	require.Len(t, sender.requests, 1)
	assert.Equal(t, protocol.TargetClaude, sender.requests[0].Target)
	assert.Equal(t, entitiesSystemPrompt, sender.requests[0].SystemPrompt)
	assert.Contains(t, sender.requests[0].Prompt, "Generate TypeORM entities for postgresql")

	classes := result.Result["entity_classes"].([]string)
	assert.Contains(t, classes, "User")

	indexes := result.Result["indexes"].([]map[string]any)
	assert.Equal(t, true, indexes[0]["unique"])
}

func TestGenerateEntitiesCustomDatabase(t *testing.T) {
	n, sender := newTestAgent(t)

	n.Execute(context.Background(), agent.Task{
		ID:     "nestjs-entities-2",
		Name:   TaskGenerateEntities,
		Params: map[string]any{"database_type": "mysql"},
	})

	require.Len(t, sender.requests, 1)
	assert.Contains(t, sender.requests[0].Prompt, "Generate TypeORM entities for mysql")
}

func TestGenerateAuth(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-auth-1",
		Name: TaskGenerateAuth,
		Params: map[string]any{
			"auth_config": map[string]any{"secret_key": "k"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Generated code content", result.Result["auth_code"])
	assert.Equal(t, "nestjs_auth", sender.requests[0].Framework)
	assert.Contains(t, sender.requests[0].Prompt, "authentication system with jwt")

	assert.Equal(t, "AuthModule", result.Result["auth_module"])

	strategies := result.Result["strategies"].([]string)
	assert.Contains(t, strategies, "JwtStrategy")
}

func TestGenerateDTOs(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-dtos-1",
		Name: TaskGenerateDTOs,
		Params: map[string]any{
			"entities": []any{"User"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Fast coding result", result.Result["dtos_code"])
	assert.Equal(t, protocol.TargetDeepSeek, sender.requests[0].Target)

	classes := result.Result["dto_classes"].([]string)
	assert.Contains(t, classes, "CreateUserDto")

	rules := result.Result["validation_rules"].(map[string][]string)
	assert.Contains(t, rules["CreateUserDto"], "@IsEmail")
}

func TestGeneratePipes(t *testing.T) {
	n, sender := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{
		ID:   "nestjs-pipes-1",
		Name: TaskGeneratePipes,
		Params: map[string]any{
			"validation_requirements": []any{"email format", "positive integers"},
		},
	})

	require.True(t, result.Success)
	assert.Equal(t, "Reasoning and analysis result", result.Result["pipes_code"])
	assert.Equal(t, pipesSystemPrompt, sender.requests[0].SystemPrompt)

	classes := result.Result["pipe_classes"].([]string)
	assert.Contains(t, classes, "ValidationPipe")
}

func TestSystemPromptOverride(t *testing.T) {
	sender := &mockSender{}
	n, err := New(sender, Config{SystemPrompt: "Custom NestJS reviewer", Logger: testLogger()})
	require.NoError(t, err)

	n.Execute(context.Background(), agent.Task{
		ID:     "override-1",
		Name:   TaskGenerateModules,
		Params: map[string]any{"features": []any{"users"}},
	})

	require.Len(t, sender.requests, 1)
	assert.Equal(t, "Custom NestJS reviewer", sender.requests[0].SystemPrompt)
}

func TestTaskFailure(t *testing.T) {
	sender := &mockSender{err: errors.New("connection reset")}
	n, err := New(sender, Config{Logger: testLogger()})
	require.NoError(t, err)

	result := n.Execute(context.Background(), agent.Task{
		ID:     "failing",
		Name:   TaskGenerateDTOs,
		Params: map[string]any{},
	})

	require.False(t, result.Success)
	assert.Contains(t, result.Error, "connection reset")
	assert.NotContains(t, result.Metadata, "framework")
}

func TestUnsupportedTask(t *testing.T) {
	n, _ := newTestAgent(t)

	result := n.Execute(context.Background(), agent.Task{ID: "t", Name: "generate_express_app"})

	require.True(t, result.Success)
	assert.Contains(t, result.Result["message"], "Generic NestJS task")
	assert.Equal(t, "nestjs", result.Metadata["framework"])
}
