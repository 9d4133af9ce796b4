package architect

import "fmt"

// Per-task system prompts. Config.SystemPrompt overrides all of them.
const (
	analyzeSystemPrompt        = "You are a senior backend architect. Focus on backend-specific concerns only."
	designAPISystemPrompt      = "You are an API architect. Design RESTful APIs following best practices."
	designModelsSystemPrompt   = "You are a database architect. Design efficient, normalized schemas."
	designServicesSystemPrompt = "You are a software architect. Design clean, maintainable service layers."
)

func analyzeRequirementsPrompt(description string, features, constraints []string) string {
	return fmt.Sprintf(`As a senior backend architect, analyze these requirements for backend system design:

Project Description: %s
Features Required: %v
Constraints: %v

Provide detailed analysis covering:
1. Data storage requirements
2. API design requirements
3. Authentication/authorization needs
4. Performance requirements
5. Scalability considerations
6. Integration requirements
7. Security considerations

Return as structured JSON with clear sections.`, description, features, constraints)
}

func designAPIPrompt(requirements map[string]any, entities []any) string {
	return fmt.Sprintf(`Design a comprehensive REST API architecture for this backend system:

Requirements: %v
Entities: %v

Design should include:
1. API endpoints structure (/api/v1/...)
2. HTTP methods and status codes
3. Request/response schemas
4. Authentication endpoints
5. Error handling patterns
6. Rate limiting considerations
7. API versioning strategy
8. Pagination patterns
9. Filtering and sorting patterns

Return as OpenAPI 3.0 specification structure.`, requirements, entities)
}

func designDataModelsPrompt(requirements, apiDesign map[string]any) string {
	return fmt.Sprintf(`Design data models and database schema for this backend system:

Requirements: %v
API Design: %v

Design should include:
1. Entity models with attributes and types
2. Relationships between entities (1:1, 1:N, N:N)
3. Database constraints and indexes
4. Migration strategy
5. Query optimization considerations
6. Data validation rules
7. Soft delete patterns if needed
8. Audit trail considerations

Return as structured schema definition.`, requirements, apiDesign)
}

func selectTechnologiesPrompt(requirements map[string]any, constraints []string, preferences map[string]any) string {
	return fmt.Sprintf(`Select the best backend technologies for this system:

Requirements: %v
Constraints: %v
Preferences: %v

Evaluate and recommend:
1. Backend framework (FastAPI, Django, NestJS, etc.)
2. Database technology (PostgreSQL, MySQL, MongoDB, etc.)
3. ORM/ODM choice
4. Authentication method
5. Caching strategy
6. Message queue if needed
7. Monitoring and logging tools
8. Testing frameworks

Provide rationale for each choice and alternatives.`, requirements, constraints, preferences)
}

func designServicesPrompt(dataModels, apiDesign map[string]any) string {
	return fmt.Sprintf(`Design the service layer architecture for this backend:

Data Models: %v
API Design: %v

Design should include:
1. Service classes and their responsibilities
2. Business logic organization
3. Data access patterns
4. Transaction management
5. Error handling strategies
6. Input validation approach
7. Caching strategies
8. Background task handling
9. Event-driven patterns if applicable

Focus on clean architecture and separation of concerns.`, dataModels, apiDesign)
}

func validateArchitecturePrompt(architecture map[string]any) string {
	return fmt.Sprintf(`Validate this backend architecture design:

Architecture: %v

Check for:
1. Consistency between API design and data models
2. Security best practices
3. Performance considerations
4. Scalability potential
5. Maintainability factors
6. Testing strategies
7. Deployment considerations
8. Error handling completeness

Identify issues and suggest improvements.`, architecture)
}
