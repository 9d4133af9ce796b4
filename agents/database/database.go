package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis-backend/core/agent"
	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Database Specialist Agent
// =============================================================================

// Database designs schemas and relationships, generates ORM models,
// migrations, and seed data, and plans query optimization and data
// integrity validation. Design work routes to claude, code generation
// to openai, and performance tuning to deepseek.
type Database struct {
	*agent.Base

	config Config
	sender protocol.Sender
}

// Config holds configuration for the database agent.
type Config struct {
	// SystemPrompt overrides the per-task system prompts when set.
	SystemPrompt string

	// Logger defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// New creates a Database Specialist agent wired to the given sender.
func New(sender protocol.Sender, cfg Config) (*Database, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	d := &Database{
		Base:   agent.NewBase(AgentID, AgentName, AgentType, cfg.Logger),
		config: cfg,
		sender: sender,
	}

	for _, capability := range Capabilities {
		d.AddCapability(capability)
	}

	d.RegisterHandler(TaskDesignSchema, d.designSchema)
	d.RegisterHandler(TaskGenerateModels, d.generateModels)
	d.RegisterHandler(TaskCreateMigrations, d.createMigrations)
	d.RegisterHandler(TaskOptimizeQueries, d.optimizeQueries)
	d.RegisterHandler(TaskDesignRelationships, d.designRelationships)
	d.RegisterHandler(TaskValidateIntegrity, d.validateIntegrity)
	d.RegisterHandler(TaskGenerateSeedData, d.generateSeedData)

	return d, nil
}

func (d *Database) systemPrompt(taskDefault string) string {
	if d.config.SystemPrompt != "" {
		return d.config.SystemPrompt
	}
	return taskDefault
}

// designSchema designs a normalized schema for the requested engine,
// constrained by that engine's feature set.
func (d *Database) designSchema(ctx context.Context, params map[string]any) (map[string]any, error) {
	entities := agent.SliceParam(params, "entities")
	requirements := agent.MapParam(params, "requirements")
	databaseType, err := backend.ParseDatabaseType(agent.StringOrDefault(params, "database_type", "postgresql"))
	if err != nil {
		return nil, err
	}
	features := FeaturesFor(databaseType)

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		schemaPrompt(entities, requirements, databaseType, features))
	req.SystemPrompt = d.systemPrompt(schemaSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	schema := parseDatabaseSchema(resp.Result, databaseType)

	return map[string]any{
		"database_schema":            schema,
		"tables":                     tablesInfo(schema),
		"relationships":              relationshipsInfo(schema),
		"indexes":                    indexesInfo(schema),
		"constraints":                constraintsInfo(schema),
		"performance_considerations": performanceImplications(schema, features),
		"migration_strategy":         migrationStrategy(schema),
		"design_metadata": map[string]any{
			"designed_at":   time.Now().UTC().Format(time.RFC3339),
			"designer":      d.Name(),
			"database_type": databaseType.String(),
		},
	}, nil
}

// generateModels generates ORM models for a designed schema.
func (d *Database) generateModels(ctx context.Context, params map[string]any) (map[string]any, error) {
	schema := agent.MapParam(params, "schema")
	ormType, err := backend.ParseORM(agent.StringOrDefault(params, "orm_type", "sqlalchemy"))
	if err != nil {
		return nil, err
	}
	cfg, err := backend.FromMap(agent.MapParam(params, "config"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(d.ID(), protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		ormModelsPrompt(schema, ormType, cfg))
	req.Language = cfg.Language()
	req.Framework = fmt.Sprintf("%s_%s", cfg.Framework, ormType)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"models_code":               resp.Result,
		"model_classes":             modelClasses(resp.Result),
		"relationships_implemented": implementedRelationships(resp.Result),
		"validation_rules":          modelValidation(resp.Result),
		"database_setup":            databaseSetup(resp.Result),
		"generation_metadata": map[string]any{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"generator":    d.Name(),
			"orm_type":     ormType.String(),
		},
	}, nil
}

// createMigrations generates migration scripts between an existing
// schema and a new one, with rollback scripts for every change.
func (d *Database) createMigrations(ctx context.Context, params map[string]any) (map[string]any, error) {
	schema := agent.MapParam(params, "schema")
	existingSchema := agent.MapParam(params, "existing_schema")
	migrationType := agent.StringOrDefault(params, "migration_type", "initial")
	databaseType, err := backend.ParseDatabaseType(agent.StringOrDefault(params, "database_type", "postgresql"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		migrationsPrompt(schema, existingSchema, migrationType, databaseType))
	req.SystemPrompt = d.systemPrompt(migrationsSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"migration_files":         migrationFiles(resp.Result),
		"migration_plan":          migrationPlan(resp.Result),
		"rollback_strategy":       rollbackStrategy(resp.Result),
		"risk_assessment":         migrationRisks(resp.Result),
		"execution_time_estimate": executionEstimates(resp.Result),
		"generation_metadata": map[string]any{
			"generated_at":   time.Now().UTC().Format(time.RFC3339),
			"generator":      d.Name(),
			"migration_type": migrationType,
		},
	}, nil
}

// optimizeQueries plans indexes, configuration tuning, and scaling for
// the observed query patterns.
func (d *Database) optimizeQueries(ctx context.Context, params map[string]any) (map[string]any, error) {
	schema := agent.MapParam(params, "schema")
	queryPatterns := agent.SliceParam(params, "query_patterns")
	performanceRequirements := agent.MapParam(params, "performance_requirements")
	databaseType, err := backend.ParseDatabaseType(agent.StringOrDefault(params, "database_type", "postgresql"))
	if err != nil {
		return nil, err
	}

	req := protocol.NewRequest(d.ID(), protocol.TargetDeepSeek, protocol.ActionFastCoding,
		optimizationPrompt(schema, queryPatterns, performanceRequirements, databaseType))
	req.Language = "sql"

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"optimization_plan":     optimizationPlan(resp.Result),
		"index_recommendations": indexRecommendations(resp.Result),
		"query_optimizations":   queryOptimizations(resp.Result),
		"configuration_tuning":  configTuning(resp.Result),
		"monitoring_setup":      monitoringSetup(resp.Result),
		"scaling_strategy":      scalingStrategy(resp.Result),
		"generation_metadata":   d.generationMetadata(),
	}, nil
}

// designRelationships designs entity relationships and cascade rules
// from business requirements.
func (d *Database) designRelationships(ctx context.Context, params map[string]any) (map[string]any, error) {
	entities := agent.SliceParam(params, "entities")
	businessRules := agent.SliceParam(params, "business_rules")

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		relationshipsPrompt(entities, businessRules))
	req.SystemPrompt = d.systemPrompt(relationshipsSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"relationship_design":        relationshipDesign(resp.Result),
		"foreign_keys":               foreignKeys(resp.Result),
		"cascade_rules":              cascadeRules(resp.Result),
		"junction_tables":            junctionTables(resp.Result),
		"business_rules_enforcement": enforcedBusinessRules(resp.Result),
		"generation_metadata":        d.generationMetadata(),
	}, nil
}

// validateIntegrity designs constraint, trigger, and application level
// validation for a schema.
func (d *Database) validateIntegrity(ctx context.Context, params map[string]any) (map[string]any, error) {
	schema := agent.MapParam(params, "schema")
	businessRules := agent.SliceParam(params, "business_rules")

	req := protocol.NewRequest(d.ID(), protocol.TargetClaude, protocol.ActionReasoning,
		integrityPrompt(schema, businessRules))
	req.SystemPrompt = d.systemPrompt(integritySystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"validation_strategy":  validationStrategy(resp.Result),
		"database_constraints": databaseConstraints(resp.Result),
		"triggers":             validationTriggers(resp.Result),
		"quality_checks":       qualityChecks(resp.Result),
		"consistency_queries":  consistencyQueries(resp.Result),
		"generation_metadata":  d.generationMetadata(),
	}, nil
}

// generateSeedData generates environment-appropriate seed data for a
// schema.
func (d *Database) generateSeedData(ctx context.Context, params map[string]any) (map[string]any, error) {
	schema := agent.MapParam(params, "schema")
	dataRequirements := agent.MapParam(params, "data_requirements")
	environment := agent.StringOrDefault(params, "environment", "development")

	req := protocol.NewRequest(d.ID(), protocol.TargetOpenAI, protocol.ActionGenerateText,
		seedDataPrompt(schema, dataRequirements, environment))
	req.SystemPrompt = d.systemPrompt(seedDataSystemPrompt)

	resp, err := d.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"seed_data":              parseSeedData(resp.Result),
		"sql_scripts":            sqlScripts(resp.Result),
		"data_files":             dataFiles(resp.Result),
		"generation_scripts":     generationScripts(resp.Result),
		"volume_recommendations": volumeRecommendations(resp.Result),
		"generation_metadata": map[string]any{
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"generator":    d.Name(),
			"environment":  environment,
		},
	}, nil
}

func (d *Database) generationMetadata() map[string]any {
	return map[string]any{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    d.Name(),
	}
}
