// Package registry assembles the full agent roster. It exposes the
// static metadata for every agent (for listing and discovery) and
// constructs the complete set against a single protocol sender.
package registry

import (
	"fmt"
	"log/slog"

	"github.com/genesis-engine/genesis-backend/agents/architect"
	"github.com/genesis-engine/genesis-backend/agents/auth"
	"github.com/genesis-engine/genesis-backend/agents/database"
	"github.com/genesis-engine/genesis-backend/agents/django"
	"github.com/genesis-engine/genesis-backend/agents/fastapi"
	"github.com/genesis-engine/genesis-backend/agents/nestjs"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// Info describes one agent in the roster.
type Info struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Capabilities []string `json:"capabilities"`
}

// Roster returns the metadata for every agent in a stable order:
// the architect first, then the framework generators, then the
// specialists.
func Roster() []Info {
	return []Info{
		{
			ID:           architect.AgentID,
			Name:         architect.AgentName,
			Type:         architect.AgentType,
			Capabilities: append([]string(nil), architect.Capabilities...),
		},
		{
			ID:           fastapi.AgentID,
			Name:         fastapi.AgentName,
			Type:         fastapi.AgentType,
			Capabilities: append([]string(nil), fastapi.Capabilities...),
		},
		{
			ID:           django.AgentID,
			Name:         django.AgentName,
			Type:         django.AgentType,
			Capabilities: append([]string(nil), django.Capabilities...),
		},
		{
			ID:           nestjs.AgentID,
			Name:         nestjs.AgentName,
			Type:         nestjs.AgentType,
			Capabilities: append([]string(nil), nestjs.Capabilities...),
		},
		{
			ID:           database.AgentID,
			Name:         database.AgentName,
			Type:         database.AgentType,
			Capabilities: append([]string(nil), database.Capabilities...),
		},
		{
			ID:           auth.AgentID,
			Name:         auth.AgentName,
			Type:         auth.AgentType,
			Capabilities: append([]string(nil), auth.Capabilities...),
		},
	}
}

// Lookup returns the roster entry for an agent ID.
func Lookup(id string) (Info, bool) {
	for _, info := range Roster() {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Config carries shared construction options for the roster.
type Config struct {
	// Logger is shared by all agents. Nil falls back to slog.Default.
	Logger *slog.Logger
}

// Agents bundles one constructed instance of every agent.
type Agents struct {
	Architect *architect.Architect
	FastAPI   *fastapi.FastAPI
	Django    *django.Django
	NestJS    *nestjs.NestJS
	Database  *database.Database
	Auth      *auth.Auth
}

// Build constructs the full roster against one sender.
func Build(sender protocol.Sender, cfg Config) (*Agents, error) {
	architectAgent, err := architect.New(sender, architect.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building architect: %w", err)
	}

	fastapiAgent, err := fastapi.New(sender, fastapi.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building fastapi generator: %w", err)
	}

	djangoAgent, err := django.New(sender, django.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building django generator: %w", err)
	}

	nestjsAgent, err := nestjs.New(sender, nestjs.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building nestjs generator: %w", err)
	}

	databaseAgent, err := database.New(sender, database.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building database specialist: %w", err)
	}

	authAgent, err := auth.New(sender, auth.Config{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("building auth specialist: %w", err)
	}

	return &Agents{
		Architect: architectAgent,
		FastAPI:   fastapiAgent,
		Django:    djangoAgent,
		NestJS:    nestjsAgent,
		Database:  databaseAgent,
		Auth:      authAgent,
	}, nil
}
