package database

import (
	"fmt"

	"github.com/genesis-engine/genesis-backend/core/backend"
)

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	schemaSystemPrompt        = "You are a senior database architect. Design efficient, normalized schemas."
	migrationsSystemPrompt    = "You are a database migration expert. Generate safe, efficient migrations."
	relationshipsSystemPrompt = "You are a data modeling expert. Design clear, efficient relationships."
	integritySystemPrompt     = "You are a data integrity specialist. Design robust validation rules."
	seedDataSystemPrompt      = "You are a test data specialist. Generate realistic, useful seed data."
)

func schemaPrompt(entities []any, requirements map[string]any, databaseType backend.DatabaseType, features Features) string {
	return fmt.Sprintf(`Design a comprehensive database schema for %s:

Entities: %v
Requirements: %v
Database Features: %+v

Design the schema considering:
1. Normalized table structure (3NF minimum)
2. Primary keys and foreign key relationships
3. Appropriate data types for %s
4. Constraints (NOT NULL, UNIQUE, CHECK)
5. Indexes for performance optimization
6. Audit fields (created_at, updated_at, deleted_at)
7. Scalability considerations
8. Data integrity rules
9. Partitioning strategy if applicable
10. Full-text search setup if needed

For each table provide:
- Table name and purpose
- Complete column definitions with types and constraints
- Relationships to other tables
- Indexes and their justification
- Business rules and validation logic

Return as structured schema definition.`,
		databaseType, entities, requirements, features, databaseType)
}

func ormModelsPrompt(schema map[string]any, ormType backend.ORMType, cfg *backend.Config) string {
	return fmt.Sprintf(`Generate %s models for this database schema:

Schema: %v
Framework: %s
Database: %s
Features: %v

Generate comprehensive ORM models including:
1. Model class definitions with proper inheritance
2. Column definitions with appropriate types and constraints
3. Relationship definitions (ForeignKey, OneToOne, OneToMany, ManyToMany)
4. Model metadata (table names, indexes)
5. Custom model methods and properties
6. Serialization methods for API responses
7. Validation logic at model level
8. Audit trail implementation
9. Soft delete implementation if needed
10. Query optimization hints

For SQLAlchemy: Use SQLAlchemy 2.0 syntax with proper annotations
For Django ORM: Use Django model best practices
For TypeORM: Use TypeScript decorators and proper typing

Return well-structured model classes with proper documentation.`,
		ormType, schema, cfg.Framework, cfg.DatabaseType(), cfg.Features)
}

func migrationsPrompt(schema, existingSchema map[string]any, migrationType string, databaseType backend.DatabaseType) string {
	return fmt.Sprintf(`Generate database migrations for %s:

New Schema: %v
Existing Schema: %v
Migration Type: %s

Generate migration scripts that:
1. Create/alter tables with proper SQL syntax
2. Add/modify columns with appropriate data types
3. Create/drop indexes for performance
4. Add/remove constraints and foreign keys
5. Handle data migration if needed
6. Include rollback scripts for each change
7. Ensure migration is idempotent
8. Include performance considerations for large tables
9. Handle concurrent access during migration
10. Include verification steps

For each migration provide:
- Forward migration (up)
- Reverse migration (down)
- Estimated execution time
- Risk assessment
- Dependencies on other migrations

Return structured migration files.`,
		databaseType, schema, existingSchema, migrationType)
}

func optimizationPrompt(schema map[string]any, queryPatterns []any, performanceRequirements map[string]any, databaseType backend.DatabaseType) string {
	return fmt.Sprintf(`Optimize database performance for %s:

Schema: %v
Common Query Patterns: %v
Performance Requirements: %v

Provide optimization strategies for:
1. Index design and optimization
2. Query optimization techniques
3. Partitioning strategies
4. Caching recommendations
5. Connection pooling configuration
6. Database configuration tuning
7. Monitoring and alerting setup
8. Scaling strategies (vertical/horizontal)
9. Read replica configuration
10. Backup and recovery optimization

For each optimization provide:
- Implementation details
- Expected performance improvement
- Resource requirements
- Monitoring metrics
- Maintenance considerations

Return comprehensive optimization plan.`,
		databaseType, schema, queryPatterns, performanceRequirements)
}

func relationshipsPrompt(entities, businessRules []any) string {
	return fmt.Sprintf(`Design entity relationships based on business requirements:

Entities: %v
Business Rules: %v

Design relationships considering:
1. One-to-One relationships and their justification
2. One-to-Many relationships with proper foreign keys
3. Many-to-Many relationships with junction tables
4. Self-referencing relationships (hierarchies, trees)
5. Polymorphic relationships if needed
6. Cascade rules (CASCADE, SET NULL, RESTRICT)
7. Referential integrity constraints
8. Business rule enforcement at database level
9. Performance implications of relationships
10. Query optimization for common relationship traversals

For each relationship provide:
- Relationship type and cardinality
- Foreign key definitions
- Cascade behavior
- Business justification
- Query examples

Return structured relationship design.`,
		entities, businessRules)
}

func integrityPrompt(schema map[string]any, businessRules []any) string {
	return fmt.Sprintf(`Design data integrity validation for this schema:

Schema: %v
Business Rules: %v

Design validation for:
1. Primary key constraints and uniqueness
2. Foreign key integrity and cascade rules
3. Check constraints for business rules
4. Data type validation and ranges
5. Null/Not Null constraints
6. Unique constraints (single and composite)
7. Custom validation triggers
8. Cross-table validation rules
9. Temporal data validation
10. Audit trail integrity

Provide:
- Database-level constraints
- Trigger-based validation
- Application-level validation rules
- Data quality checks
- Consistency verification queries

Return comprehensive validation strategy.`,
		schema, businessRules)
}

func seedDataPrompt(schema, dataRequirements map[string]any, environment string) string {
	return fmt.Sprintf(`Generate seed data for %s environment:

Schema: %v
Data Requirements: %v
Environment: %s

Generate realistic seed data including:
1. Referential integrity compliance
2. Realistic data distributions
3. Test edge cases and scenarios
4. Performance testing data volumes
5. User roles and permissions
6. Sample business scenarios
7. Internationalization data if needed
8. Audit trail data
9. Historical data for analytics
10. Error condition test data

Provide:
- SQL INSERT statements
- JSON data files
- CSV import files
- Data generation scripts
- Volume recommendations per table

Return structured seed data package.`,
		environment, schema, dataRequirements, environment)
}
