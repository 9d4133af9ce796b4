// Package generators assembles backend projects from architecture
// plans. Each generator turns project configuration and architecture
// data into routed LLM requests and folds the responses into a file
// map keyed by relative output path.
//
// BackendGenerator drives a complete project build for one framework
// and delegates data models, API endpoints, and authentication to the
// specialized generators, which are also usable on their own.
package generators

import (
	"context"
	"log/slog"

	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// Sender IDs stamped on routed requests.
const (
	backendSenderID = "backend_generator"
	apiSenderID     = "api_generator"
	modelSenderID   = "model_generator"
	authSenderID    = "auth_generator"
)

// Config holds shared generator settings.
type Config struct {
	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// sendText routes a request and returns the raw result text.
func sendText(ctx context.Context, sender protocol.Sender, req *protocol.Request) (string, error) {
	resp, err := sender.Send(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Result, nil
}
