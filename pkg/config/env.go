package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "PETADOPTION"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv = "PETADOPTION_APP_ENV"
	EnvPort   = "PETADOPTION_APP_PORT"

	EnvDBDSN  = "PETADOPTION_DB_DSN"
	EnvDBHost = "PETADOPTION_DB_HOST"
	EnvDBUser = "PETADOPTION_DB_USER"
	EnvDBName = "PETADOPTION_DB_NAME"

	EnvImagesPendingDir  = "PETADOPTION_IMAGES_PENDING_DIR"
	EnvImagesApprovedDir = "PETADOPTION_IMAGES_APPROVED_DIR"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
