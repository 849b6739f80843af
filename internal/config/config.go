package config

import (
	"strings"
	"time"

	"github.com/openair/aqimon/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Config is the typed view over viper. Services that only need a single
// value (the auth secret, the stations URL) read viper directly through
// the keys in internal/pkg/constants.
type Config struct {
	HTTPAddr        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	DatabaseDSN string

	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPPassword string

	SMSAPIKey string
	SMSAPIURL string

	StationsURL string

	LogLevel string
}

// Load binds environment variables (AQIMON_HTTP_ADDR and so on), applies
// defaults and returns the resolved configuration.
func Load() (*Config, error) {
	viper.SetEnvPrefix("aqimon")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperHTTPAddr, ":8080")
	viper.SetDefault(constants.ViperCORSOrigins, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperShutdownTimeout, 10*time.Second)
	viper.SetDefault(constants.ViperDatabaseDSN, "postgres://localhost:5432/aqimon")
	viper.SetDefault(constants.ViperAuthTTL, 24*time.Hour)
	viper.SetDefault(constants.ViperSMTPHost, "smtp.gmail.com")
	viper.SetDefault(constants.ViperSMTPPort, 587)
	viper.SetDefault(constants.ViperLogLevel, "info")

	return &Config{
		HTTPAddr:        viper.GetString(constants.ViperHTTPAddr),
		CORSOrigins:     viper.GetStringSlice(constants.ViperCORSOrigins),
		ShutdownTimeout: viper.GetDuration(constants.ViperShutdownTimeout),
		DatabaseDSN:     viper.GetString(constants.ViperDatabaseDSN),
		SMTPHost:        viper.GetString(constants.ViperSMTPHost),
		SMTPPort:        viper.GetInt(constants.ViperSMTPPort),
		SMTPSender:      viper.GetString(constants.ViperSMTPSender),
		SMTPPassword:    viper.GetString(constants.ViperSMTPPassword),
		SMSAPIKey:       viper.GetString(constants.ViperSMSAPIKey),
		SMSAPIURL:       viper.GetString(constants.ViperSMSAPIURL),
		StationsURL:     viper.GetString(constants.ViperStationsURL),
		LogLevel:        viper.GetString(constants.ViperLogLevel),
	}, nil
}
