package generators

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/genesis-engine/genesis-backend/core/backend"
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

func testConfig(t *testing.T) *backend.Config {
	t.Helper()

	cfg, err := backend.New("test-api")
	require.NoError(t, err)
	cfg.Description = "Test API backend"
	cfg.Features = []string{"api", "authentication", "database"}
	cfg.Database = &backend.DatabaseConfig{
		Type: backend.DatabasePostgreSQL,
		Name: "test_api",
		ORM:  backend.ORMSQLAlchemy,
	}
	cfg.Auth = backend.NewAuthConfig(backend.AuthJWT)

	return cfg
}

func testArchitecture() map[string]any {
	return map[string]any{
		"api_design": map[string]any{
			"endpoints": []any{
				map[string]any{"path": "/users", "method": "GET"},
				map[string]any{"path": "/users", "method": "POST"},
			},
		},
		"data_models": []any{
			map[string]any{"name": "User", "fields": []any{"id", "email", "password_hash"}},
		},
	}
}
