package architect

// Agent identity.
const (
	AgentID   = "backend_architect"
	AgentName = "Backend Architect Agent"
	AgentType = "architect"
)

// Task names handled by the Architect.
const (
	TaskAnalyzeRequirements  = "analyze_backend_requirements"
	TaskDesignAPI            = "design_api_architecture"
	TaskDesignDataModels     = "design_data_models"
	TaskSelectTechnologies   = "select_backend_technologies"
	TaskDesignServices       = "design_service_architecture"
	TaskValidateArchitecture = "validate_backend_architecture"
)

// Capabilities advertised by the Architect.
var Capabilities = []string{
	TaskAnalyzeRequirements,
	TaskDesignAPI,
	TaskDesignDataModels,
	TaskSelectTechnologies,
	TaskDesignServices,
	TaskValidateArchitecture,
}
