package config

const EnvPrefix = "DRILLTRACK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Canonical environment variable names, kept here so tests and deploy
// manifests reference a single source.
const (
	EnvAppEnv        = "DRILLTRACK_APP_ENV"
	EnvPort          = "DRILLTRACK_APP_PORT"
	EnvLogLevel      = "DRILLTRACK_LOG_LEVEL"
	EnvLogWarnStack  = "DRILLTRACK_LOG_WARN_STACK"
	EnvGeminiAPIKey  = "DRILLTRACK_GEMINI_API_KEY"
	EnvGeminiModel   = "DRILLTRACK_GEMINI_MODEL"
	EnvGeminiBaseURL = "DRILLTRACK_GEMINI_BASE_URL"
	EnvGeminiTimeout = "DRILLTRACK_GEMINI_TIMEOUT"
	EnvCORSOrigins   = "DRILLTRACK_CORS_ORIGINS"
)
