package django

// Agent identity.
const (
	AgentID   = "django_generator"
	AgentName = "Django Generator Agent"
	AgentType = "generator"
)

// Task names handled by the Django agent.
const (
	TaskGenerateProject  = "generate_django_project"
	TaskGenerateModels   = "generate_django_models"
	TaskGenerateViews    = "generate_django_views"
	TaskGenerateURLs     = "generate_django_urls"
	TaskGenerateAdmin    = "generate_django_admin"
	TaskGenerateRESTAPI  = "generate_django_rest_api"
	TaskGenerateAuth     = "generate_django_auth"
	TaskGenerateSettings = "generate_django_settings"
)

// Capabilities advertised by the Django agent.
var Capabilities = []string{
	TaskGenerateProject,
	TaskGenerateModels,
	TaskGenerateViews,
	TaskGenerateURLs,
	TaskGenerateAdmin,
	TaskGenerateRESTAPI,
	TaskGenerateAuth,
	TaskGenerateSettings,
}
