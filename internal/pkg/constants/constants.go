package constants

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyUsername = "username"
)

// Viper configuration keys. Defaults live in internal/config.
const (
	ViperHTTPAddr        = "http.addr"
	ViperCORSOrigins     = "http.cors_origins"
	ViperShutdownTimeout = "http.shutdown_timeout"

	ViperDatabaseDSN = "db.dsn"

	ViperAuthSecret = "auth.secret"
	ViperAuthTTL    = "auth.token_ttl"

	ViperSMTPHost     = "smtp.host"
	ViperSMTPPort     = "smtp.port"
	ViperSMTPSender   = "smtp.sender"
	ViperSMTPPassword = "smtp.password"

	ViperSMSAPIKey = "sms.api_key"
	ViperSMSAPIURL = "sms.api_url"

	ViperStationsURL = "stations.url"

	ViperLogLevel = "log.level"
)
