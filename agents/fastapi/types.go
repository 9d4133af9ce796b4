package fastapi

// Agent identity.
const (
	AgentID   = "fastapi_generator"
	AgentName = "FastAPI Generator Agent"
	AgentType = "generator"
)

// Task names handled by the FastAPI agent.
const (
	TaskGenerateApp          = "generate_fastapi_app"
	TaskGenerateRoutes       = "generate_fastapi_routes"
	TaskGenerateSchemas      = "generate_pydantic_models"
	TaskGenerateMiddleware   = "generate_fastapi_middleware"
	TaskGenerateAuth         = "generate_fastapi_auth"
	TaskGenerateModels       = "generate_sqlalchemy_models"
	TaskGenerateDependencies = "generate_fastapi_dependencies"
)

// Capabilities advertised by the FastAPI agent.
var Capabilities = []string{
	TaskGenerateApp,
	TaskGenerateRoutes,
	TaskGenerateSchemas,
	TaskGenerateMiddleware,
	TaskGenerateAuth,
	TaskGenerateModels,
	TaskGenerateDependencies,
}
