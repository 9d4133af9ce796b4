package nestjs

// Agent identity.
const (
	AgentID   = "nestjs_generator"
	AgentName = "NestJS Generator Agent"
	AgentType = "generator"
)

// Task names handled by the NestJS agent.
const (
	TaskGenerateProject     = "generate_nestjs_project"
	TaskGenerateModules     = "generate_nestjs_modules"
	TaskGenerateControllers = "generate_nestjs_controllers"
	TaskGenerateServices    = "generate_nestjs_services"
	TaskGenerateEntities    = "generate_typeorm_entities"
	TaskGenerateAuth        = "generate_nestjs_auth"
	TaskGenerateDTOs        = "generate_nestjs_dtos"
	TaskGeneratePipes       = "generate_nestjs_pipes"
)

// Capabilities advertised by the NestJS agent.
var Capabilities = []string{
	TaskGenerateProject,
	TaskGenerateModules,
	TaskGenerateControllers,
	TaskGenerateServices,
	TaskGenerateEntities,
	TaskGenerateAuth,
	TaskGenerateDTOs,
	TaskGeneratePipes,
}
