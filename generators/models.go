package generators

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/genesis-engine/genesis-backend/core/backend"
	"github.com/genesis-engine/genesis-backend/core/errors"
	"github.com/genesis-engine/genesis-backend/core/protocol"
)

// =============================================================================
// Model Generator
// =============================================================================

// ModelGenerator builds data models and ORM entities: model classes,
// migrations, managers and repositories, plus test suites and
// factories for them. The ORM is taken from the database config and
// falls back to the framework default.
type ModelGenerator struct {
	config Config
	sender protocol.Sender
}

// NewModelGenerator creates a model generator wired to the given sender.
func NewModelGenerator(sender protocol.Sender, cfg Config) *ModelGenerator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &ModelGenerator{config: cfg, sender: sender}
}

// GenerateModels builds model files for the configured ORM.
func (g *ModelGenerator) GenerateModels(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	orm := ormFor(cfg)
	g.config.Logger.Info("generating models", "orm", orm)

	switch orm {
	case backend.ORMSQLAlchemy:
		return g.generateSQLAlchemy(ctx, dataModels, cfg)
	case backend.ORMDjango:
		return g.generateDjango(ctx, dataModels, cfg)
	case backend.ORMTypeORM:
		return g.generateTypeORM(ctx, dataModels, cfg)
	case backend.ORMPrisma:
		return g.generatePrisma(ctx, dataModels, cfg)
	case backend.ORMMongoose:
		return g.generateMongoose(ctx, dataModels, cfg)
	default:
		return nil, fmt.Errorf("orm %s: %w", orm, errors.ErrUnsupportedORM)
	}
}

// GenerateSQLAlchemyModels builds SQLAlchemy models regardless of the
// configured ORM.
func (g *ModelGenerator) GenerateSQLAlchemyModels(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	return g.generateSQLAlchemy(ctx, dataModels, cfg)
}

// GenerateDjangoModels builds Django ORM models regardless of the
// configured ORM.
func (g *ModelGenerator) GenerateDjangoModels(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	return g.generateDjango(ctx, dataModels, cfg)
}

// GenerateTypeORMEntities builds TypeORM entities regardless of the
// configured ORM.
func (g *ModelGenerator) GenerateTypeORMEntities(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	return g.generateTypeORM(ctx, dataModels, cfg)
}

// ormFor resolves the ORM to generate for, preferring the configured
// one over the framework default.
func ormFor(cfg *backend.Config) backend.ORMType {
	if cfg.Database != nil && cfg.Database.ORM != "" {
		return cfg.Database.ORM
	}
	return defaultORM(cfg.Framework)
}

func defaultORM(f backend.Framework) backend.ORMType {
	switch f {
	case backend.FrameworkDjango:
		return backend.ORMDjango
	case backend.FrameworkNestJS:
		return backend.ORMTypeORM
	case backend.FrameworkExpress:
		return backend.ORMMongoose
	default:
		return backend.ORMSQLAlchemy
	}
}

// =============================================================================
// SQLAlchemy
// =============================================================================

func (g *ModelGenerator) generateSQLAlchemy(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		sqlalchemyModelsPrompt(dataModels, cfg))
	req.SystemPrompt = sqlalchemySystemPrompt

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseSQLAlchemyModels(raw)

	base, err := g.sqlalchemyBase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, base)

	mixins, err := g.sqlalchemyMixins(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, mixins)

	migrations, err := g.alembicMigrations(ctx, dataModels, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, migrations)

	return files, nil
}

func (g *ModelGenerator) sqlalchemyBase(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		sqlalchemyBasePrompt(cfg))
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/db/base.py": raw}, nil
}

func (g *ModelGenerator) sqlalchemyMixins(ctx context.Context) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		sqlalchemyMixinsPrompt)

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"app/db/mixins.py": raw}, nil
}

func (g *ModelGenerator) alembicMigrations(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		alembicMigrationsPrompt(dataModels, cfg))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"alembic.ini":            "# Alembic configuration",
		"alembic/env.py":         raw,
		"alembic/script.py.mako": "# Migration template",
	}, nil
}

// =============================================================================
// Django ORM
// =============================================================================

func (g *ModelGenerator) generateDjango(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		djangoModelsPrompt(dataModels, cfg))
	req.Language = "python"
	req.Framework = "django"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseDjangoModels(raw)

	managers, err := g.djangoManagers(ctx)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, managers)

	maps.Copy(files, djangoMigrationFiles())

	admin, err := g.djangoAdmin(ctx, dataModels)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, admin)

	return files, nil
}

func (g *ModelGenerator) djangoManagers(ctx context.Context) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		djangoManagersPrompt)
	req.Language = "python"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"models/managers.py": raw}, nil
}

func (g *ModelGenerator) djangoAdmin(ctx context.Context, dataModels []any) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		djangoAdminPrompt(dataModels))

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"admin.py": raw}, nil
}

// =============================================================================
// TypeORM
// =============================================================================

func (g *ModelGenerator) generateTypeORM(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		typeormEntitiesPrompt(dataModels, cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	files := parseTypeORMEntities(raw)

	dataSource, err := g.typeormConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, dataSource)

	maps.Copy(files, typeormMigrationFiles())

	repositories, err := g.typeormRepositories(ctx, dataModels)
	if err != nil {
		return nil, err
	}
	maps.Copy(files, repositories)

	return files, nil
}

func (g *ModelGenerator) typeormConfig(ctx context.Context, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		typeormConfigPrompt(cfg))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"src/data-source.ts": raw}, nil
}

func (g *ModelGenerator) typeormRepositories(ctx context.Context, dataModels []any) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		typeormRepositoriesPrompt(dataModels))
	req.Language = "typescript"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"src/repositories/base.repository.ts": raw}, nil
}

// =============================================================================
// Prisma and Mongoose
// =============================================================================

func (g *ModelGenerator) generatePrisma(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetClaude, protocol.ActionReasoning,
		prismaSchemaPrompt(dataModels, cfg))
	req.SystemPrompt = prismaSystemPrompt

	schema, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}

	seed, err := g.prismaSeed(ctx, dataModels)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"prisma/schema.prisma": schema,
		"prisma/seed.ts":       seed,
	}, nil
}

func (g *ModelGenerator) prismaSeed(ctx context.Context, dataModels []any) (string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		prismaSeedPrompt(dataModels))
	req.Language = "typescript"

	return sendText(ctx, g.sender, req)
}

func (g *ModelGenerator) generateMongoose(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		mongooseModelsPrompt(dataModels, cfg))
	req.Language = "typescript"
	req.Framework = "mongoose"

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return parseMongooseModels(raw), nil
}

// =============================================================================
// Model tests and factories
// =============================================================================

// GenerateTests builds the model test suite for the configured ORM.
func (g *ModelGenerator) GenerateTests(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetOpenAI, protocol.ActionCodeGeneration,
		modelTestsPrompt(dataModels, cfg))
	req.Language = cfg.Language()

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"tests/test_models.py": raw}, nil
}

// GenerateFactories builds model factories for tests.
func (g *ModelGenerator) GenerateFactories(ctx context.Context, dataModels []any, cfg *backend.Config) (map[string]string, error) {
	req := protocol.NewRequest(modelSenderID, protocol.TargetDeepSeek, protocol.ActionFastCoding,
		modelFactoriesPrompt(dataModels, cfg))
	req.Language = cfg.Language()

	raw, err := sendText(ctx, g.sender, req)
	if err != nil {
		return nil, err
	}
	return map[string]string{"tests/factories.py": raw}, nil
}
