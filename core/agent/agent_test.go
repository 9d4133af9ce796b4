package agent

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

func TestNewTaskAssignsID(t *testing.T) {
	task := NewTask("generate_fastapi_app", map[string]any{"config": map[string]any{}})
	require.NotEmpty(t, task.ID)
	assert.Equal(t, "generate_fastapi_app", task.Name)
}

func TestExecuteSuccess(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())
	base.RegisterHandler("build", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return map[string]any{"artifact": params["input"]}, nil
	})

	result := base.Execute(context.Background(), Task{
		ID:     "task-1",
		Name:   "build",
		Params: map[string]any{"input": "code"},
	})

	require.True(t, result.Success)
	assert.Equal(t, "task-1", result.TaskID)
	assert.Equal(t, "code", result.Result["artifact"])
	assert.Equal(t, "Test Agent", result.Metadata["agent"])
	assert.Equal(t, "build", result.Metadata["task_type"])

	ts, ok := result.Metadata["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestExecuteHandlerError(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())
	base.RegisterHandler("build", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return nil, errors.New("model output was empty")
	})

	result := base.Execute(context.Background(), Task{ID: "task-2", Name: "build"})

	require.False(t, result.Success)
	assert.Equal(t, "model output was empty", result.Error)
	assert.Nil(t, result.Result)
	assert.Equal(t, "Test Agent", result.Metadata["agent"])
	assert.Equal(t, "build", result.Metadata["task_type"])
	assert.NotContains(t, result.Metadata, "timestamp")
}

func TestExecuteGenericFallback(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())

	result := base.Execute(context.Background(), Task{ID: "task-3", Name: "deploy_to_mars"})

	require.True(t, result.Success)
	assert.Equal(t, "Generic generator task deploy_to_mars processed", result.Result["message"])
	assert.Equal(t, "task-3", result.Result["task_id"])
	assert.Equal(t, "Test Agent", result.Result["agent"])
	assert.Equal(t, "deploy_to_mars", result.Metadata["task_type"])
}

func TestExecuteGenericLabelOverride(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "architect", testLogger())
	base.SetGenericLabel("backend architecture")

	result := base.Execute(context.Background(), Task{ID: "task-4", Name: "paint_the_shed"})

	require.True(t, result.Success)
	assert.Equal(t, "Generic backend architecture task paint_the_shed processed", result.Result["message"])
}

func TestExecuteAssignsMissingTaskID(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())
	base.RegisterHandler("noop", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return map[string]any{}, nil
	})

	result := base.Execute(context.Background(), Task{Name: "noop"})
	assert.NotEmpty(t, result.TaskID)
}

func TestSetResultMetadata(t *testing.T) {
	base := NewBase("fastapi_generator", "FastAPI Generator Agent", "generator", testLogger())
	base.SetResultMetadata("framework", "fastapi")
	base.RegisterHandler("ok", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return map[string]any{}, nil
	})
	base.RegisterHandler("fail", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		return nil, errors.New("boom")
	})

	success := base.Execute(context.Background(), Task{ID: "a", Name: "ok"})
	assert.Equal(t, "fastapi", success.Metadata["framework"])

	failure := base.Execute(context.Background(), Task{ID: "b", Name: "fail"})
	assert.NotContains(t, failure.Metadata, "framework")
}

func TestCapabilities(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())
	base.AddCapability("generate_app")
	base.AddCapability("generate_routes")

	assert.True(t, base.HasCapability("generate_app"))
	assert.False(t, base.HasCapability("generate_docs"))

	caps := base.Capabilities()
	require.Len(t, caps, 2)
	caps[0] = "mutated"
	assert.True(t, base.HasCapability("generate_app"))
}

func TestExecutePropagatesContext(t *testing.T) {
	base := NewBase("test_agent", "Test Agent", "generator", testLogger())
	base.RegisterHandler("wait", func(ctx context.Context, params map[string]any) (map[string]any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return map[string]any{}, nil
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := base.Execute(ctx, Task{ID: "c", Name: "wait"})
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "context canceled")
}
