// Package agent provides the task envelope and base implementation the
// specialized generation agents are built on. A task names an action
// and carries loose parameters; agents register handlers per action and
// wrap handler output in a result envelope with execution metadata.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work dispatched to an agent. Name selects the
// registered handler; Params carries handler-specific input.
type Task struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// NewTask creates a Task with a generated ID.
func NewTask(name string, params map[string]any) Task {
	return Task{
		ID:     uuid.NewString(),
		Name:   name,
		Params: params,
	}
}

// Result is the outcome envelope for an executed task. Failures are
// carried in-band: Success false with Error set, never a Go error.
type Result struct {
	TaskID   string         `json:"task_id"`
	Success  bool           `json:"success"`
	Result   map[string]any `json:"result,omitempty"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Handler executes one task action. The returned map becomes the
// result payload.
type Handler func(ctx context.Context, params map[string]any) (map[string]any, error)

// Base carries the identity, capabilities, and handler registry shared
// by all agents. Registration is done at construction time; Base is
// safe for concurrent Execute calls afterwards.
type Base struct {
	id           string
	name         string
	agentType    string
	genericLabel string
	capabilities []string
	handlers     map[string]Handler
	meta         map[string]any
	logger       *slog.Logger
}

// NewBase creates an agent base. A nil logger falls back to
// slog.Default.
func NewBase(id, name, agentType string, logger *slog.Logger) *Base {
	if logger == nil {
		logger = slog.Default()
	}
	return &Base{
		id:           id,
		name:         name,
		agentType:    agentType,
		genericLabel: agentType,
		handlers:     make(map[string]Handler),
		meta:         make(map[string]any),
		logger:       logger.With("agent", id),
	}
}

// ID returns the agent identifier.
func (b *Base) ID() string { return b.id }

// Name returns the agent display name.
func (b *Base) Name() string { return b.name }

// Type returns the agent type label.
func (b *Base) Type() string { return b.agentType }

// Logger returns the agent's logger.
func (b *Base) Logger() *slog.Logger { return b.logger }

// AddCapability declares a capability the agent advertises.
func (b *Base) AddCapability(capability string) {
	b.capabilities = append(b.capabilities, capability)
}

// HasCapability reports whether the agent advertises the capability.
func (b *Base) HasCapability(capability string) bool {
	for _, c := range b.capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// Capabilities returns a copy of the advertised capability list.
func (b *Base) Capabilities() []string {
	out := make([]string, len(b.capabilities))
	copy(out, b.capabilities)
	return out
}

// RegisterHandler binds a handler to a task name.
func (b *Base) RegisterHandler(name string, handler Handler) {
	b.handlers[name] = handler
}

// SetResultMetadata registers a fixed key added to the metadata of
// every successful result, e.g. the framework an agent targets.
func (b *Base) SetResultMetadata(key string, value any) {
	b.meta[key] = value
}

// SetGenericLabel overrides the phrase used in the generic
// acknowledgement for unregistered tasks. Defaults to the agent type.
func (b *Base) SetGenericLabel(label string) {
	b.genericLabel = label
}

// Execute dispatches the task to its registered handler and wraps the
// outcome. Handler errors produce a failed result rather than a Go
// error. A task with no registered handler is not a failure: it
// resolves to a generic acknowledgement.
func (b *Base) Execute(ctx context.Context, task Task) Result {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	handler, ok := b.handlers[task.Name]
	if !ok {
		b.logger.Debug("no handler registered, acknowledging generically", "task", task.Name)
		return Result{
			TaskID:  task.ID,
			Success: true,
			Result: map[string]any{
				"message": fmt.Sprintf("Generic %s task %s processed", b.genericLabel, task.Name),
				"task_id": task.ID,
				"agent":   b.name,
			},
			Metadata: b.successMetadata(task),
		}
	}

	b.logger.Info("executing task", "task", task.Name, "task_id", task.ID)

	payload, err := handler(ctx, task.Params)
	if err != nil {
		b.logger.Error("task failed", "task", task.Name, "error", err)
		return Result{
			TaskID:   task.ID,
			Success:  false,
			Error:    err.Error(),
			Metadata: b.baseMetadata(task),
		}
	}

	return Result{
		TaskID:   task.ID,
		Success:  true,
		Result:   payload,
		Metadata: b.successMetadata(task),
	}
}

func (b *Base) baseMetadata(task Task) map[string]any {
	return map[string]any{
		"agent":     b.name,
		"task_type": task.Name,
	}
}

func (b *Base) successMetadata(task Task) map[string]any {
	md := map[string]any{
		"agent":     b.name,
		"task_type": task.Name,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range b.meta {
		md[k] = v
	}
	return md
}
