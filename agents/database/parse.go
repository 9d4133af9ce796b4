package database

// Response summarizers. Schema designs, migration plans, and seed data
// inventories come back as stable structures the orchestration layer
// keys on; generated code rides along raw under its own result key.

import "github.com/genesis-engine/genesis-backend/core/backend"

func parseDatabaseSchema(raw string, databaseType backend.DatabaseType) map[string]any {
	return map[string]any{
		"database_type": databaseType.String(),
		"tables": []map[string]any{
			{
				"name": "users",
				"columns": []map[string]any{
					{"name": "id", "type": "UUID", "constraints": []string{"PRIMARY KEY"}},
					{"name": "email", "type": "VARCHAR(255)", "constraints": []string{"UNIQUE", "NOT NULL"}},
					{"name": "password_hash", "type": "VARCHAR(255)", "constraints": []string{"NOT NULL"}},
					{"name": "created_at", "type": "TIMESTAMP", "constraints": []string{"DEFAULT CURRENT_TIMESTAMP"}},
					{"name": "updated_at", "type": "TIMESTAMP", "constraints": []string{"DEFAULT CURRENT_TIMESTAMP"}},
				},
			},
		},
		"indexes": []map[string]any{
			{"name": "idx_users_email", "table": "users", "columns": []string{"email"}, "type": "unique"},
		},
		"foreign_keys": []map[string]any{},
		"constraints":  []map[string]any{},
	}
}

func tablesInfo(schema map[string]any) []map[string]any {
	tables, _ := schema["tables"].([]map[string]any)
	return tables
}

func relationshipsInfo(schema map[string]any) []map[string]any {
	foreignKeys, _ := schema["foreign_keys"].([]map[string]any)
	return foreignKeys
}

func indexesInfo(schema map[string]any) []map[string]any {
	indexes, _ := schema["indexes"].([]map[string]any)
	return indexes
}

func constraintsInfo(schema map[string]any) []map[string]any {
	constraints, _ := schema["constraints"].([]map[string]any)
	return constraints
}

func performanceImplications(schema map[string]any, features Features) map[string]any {
	return map[string]any{
		"query_performance":  "Optimized with proper indexes",
		"storage_efficiency": "Normalized design reduces redundancy",
		"scalability":        "Supports horizontal partitioning",
		"recommendations": []string{
			"Add composite indexes for common query patterns",
			"Consider partitioning for large tables",
		},
	}
}

func migrationStrategy(schema map[string]any) map[string]string {
	return map[string]string{
		"approach":          "Incremental migrations",
		"rollback_strategy": "Automated rollback scripts",
		"testing":           "Staging environment validation",
		"deployment":        "Blue-green deployment",
	}
}

func modelClasses(raw string) []string {
	return []string{"User", "Profile", "Post"}
}

func implementedRelationships(raw string) []map[string]string {
	return []map[string]string{
		{"from": "User", "to": "Profile", "type": "one_to_one"},
		{"from": "User", "to": "Post", "type": "one_to_many"},
	}
}

func modelValidation(raw string) map[string][]string {
	return map[string][]string{
		"User":    {"email validation", "password strength"},
		"Profile": {"required fields validation"},
	}
}

func databaseSetup(raw string) string {
	return "# Database engine and session configuration"
}

func migrationFiles(raw string) map[string]string {
	return map[string]string{
		"001_initial_schema.sql":          "CREATE TABLE users...",
		"001_initial_schema_rollback.sql": "DROP TABLE users...",
	}
}

func migrationPlan(raw string) []map[string]string {
	return []map[string]string{
		{"step": "1", "action": "Create users table", "estimated_time": "5 seconds"},
		{"step": "2", "action": "Add indexes", "estimated_time": "10 seconds"},
	}
}

func rollbackStrategy(raw string) map[string]any {
	return map[string]any{
		"automatic_rollback":  true,
		"rollback_time_limit": "5 minutes",
		"backup_strategy":     "Point-in-time recovery",
	}
}

func migrationRisks(raw string) []string {
	return []string{
		"Table locking during migration",
		"Data type conversion issues",
		"Foreign key constraint violations",
	}
}

func executionEstimates(raw string) map[string]string {
	return map[string]string{
		"total_time":    "15 minutes",
		"downtime":      "5 minutes",
		"rollback_time": "2 minutes",
	}
}

func optimizationPlan(raw string) map[string]string {
	return map[string]string{
		"priority":                  "high",
		"estimated_improvement":     "50% query performance increase",
		"implementation_complexity": "medium",
	}
}

func indexRecommendations(raw string) []map[string]any {
	return []map[string]any{
		{
			"table":         "users",
			"columns":       []string{"email"},
			"type":          "unique",
			"justification": "Frequent user lookup by email",
		},
	}
}

func queryOptimizations(raw string) []string {
	return []string{
		"Use query parameters to prevent SQL injection",
		"Implement query result caching",
		"Use appropriate JOIN types",
	}
}

func configTuning(raw string) map[string]any {
	return map[string]any{
		"connection_pool_size": 20,
		"query_timeout":        30,
		"cache_size":           "256MB",
	}
}

func monitoringSetup(raw string) []string {
	return []string{
		"Monitor query execution time",
		"Track connection pool usage",
		"Alert on deadlocks",
	}
}

func scalingStrategy(raw string) map[string]string {
	return map[string]string{
		"read_replicas": "3 replicas for read scaling",
		"partitioning":  "Horizontal partitioning by date",
		"caching":       "Redis for session and query caching",
	}
}

func relationshipDesign(raw string) []map[string]string {
	return []map[string]string{
		{
			"from_entity":       "User",
			"to_entity":         "Profile",
			"relationship_type": "one_to_one",
			"foreign_key":       "user_id",
			"cascade":           "CASCADE",
		},
	}
}

func foreignKeys(raw string) []map[string]string {
	return []map[string]string{
		{
			"table":      "profiles",
			"column":     "user_id",
			"references": "users(id)",
			"on_delete":  "CASCADE",
		},
	}
}

func cascadeRules(raw string) map[string]string {
	return map[string]string{
		"user_profile": "CASCADE",
		"user_posts":   "SET NULL",
	}
}

func junctionTables(raw string) []map[string]any {
	return []map[string]any{
		{
			"name":               "user_roles",
			"left_table":         "users",
			"right_table":        "roles",
			"additional_columns": []string{"assigned_at", "assigned_by"},
		},
	}
}

func enforcedBusinessRules(raw string) []string {
	return []string{
		"User must have at least one role",
		"Email must be unique across all users",
		"Soft deleted users cannot login",
	}
}

func validationStrategy(raw string) map[string]string {
	return map[string]string{
		"database_level":    "Constraints and triggers",
		"application_level": "ORM validation",
		"api_level":         "Request validation",
	}
}

func databaseConstraints(raw string) []map[string]string {
	return []map[string]string{
		{"type": "CHECK", "condition": "email LIKE '%@%'", "table": "users"},
		{"type": "UNIQUE", "columns": "email", "table": "users"},
	}
}

func validationTriggers(raw string) []string {
	return []string{
		"validate_email_format_trigger",
		"audit_changes_trigger",
	}
}

func qualityChecks(raw string) []string {
	return []string{
		"Check for duplicate emails",
		"Validate foreign key integrity",
		"Check data completeness",
	}
}

func consistencyQueries(raw string) []string {
	return []string{
		"SELECT COUNT(*) FROM users WHERE email IS NULL",
		"SELECT COUNT(*) FROM orphaned_profiles",
	}
}

func parseSeedData(raw string) map[string]any {
	return map[string]any{
		"format":         "SQL and JSON",
		"tables_covered": []string{"users", "profiles", "roles"},
		"record_counts":  map[string]int{"users": 100, "profiles": 100, "roles": 5},
	}
}

func sqlScripts(raw string) []string {
	return []string{
		"seed_users.sql",
		"seed_roles.sql",
		"seed_permissions.sql",
	}
}

func dataFiles(raw string) []string {
	return []string{
		"users.json",
		"profiles.csv",
		"roles.yaml",
	}
}

func generationScripts(raw string) []string {
	return []string{
		"generate_users.py",
		"generate_test_scenarios.py",
	}
}

func volumeRecommendations(raw string) map[string]int {
	return map[string]int{
		"development":  100,
		"testing":      1000,
		"staging":      10000,
		"load_testing": 100000,
	}
}
