package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAparDBType string = "APAR_DB_TYPE"
	EnvKeyAparDbPath string = "APAR_DB_PATH"

	EnvKeyAparHttpHostPort string = "APAR_HTTP_HOST_PORT"
	EnvKeyAparGrpcHostPort string = "APAR_GRPC_HOST_PORT"

	EnvKeyAparDefaultRate  string = "APAR_DEFAULT_RATE"
	EnvKeyAparDefaultBurst string = "APAR_DEFAULT_BURST"

	EnvKeyAparJWTSecret string = "APAR_JWT_SECRET"
	EnvKeyAparJWTExpire string = "APAR_JWT_EXPIRE"

	EnvKeyAparAdminName     string = "APAR_ADMIN_NAME"
	EnvKeyAparAdminEmail    string = "APAR_ADMIN_EMAIL"
	EnvKeyAparAdminPassword string = "APAR_ADMIN_PASSWORD"
	EnvKeyAparSeed          string = "APAR_SEED"

	EnvKeyAparLogDir       string = "APAR_LOG_DIR"
	EnvKeyAparLogMaxSizeMB string = "APAR_LOG_MAX_SIZE_MB"

	LoggerNameAparCore      string = "apar_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameSeed          string = "seed"
	LoggerFieldCategory     string = "category"

	LoggerCategoryAsset      string = "asset"
	LoggerCategoryInspection string = "inspection"
	LoggerCategoryReport     string = "report"
	LoggerCategoryUser       string = "user"
)
