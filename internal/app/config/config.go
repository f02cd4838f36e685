package config

import (
	"pod-tracker-service/internal/pkg/constvars"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

var defaults = map[string]interface{}{
	"MONGO_URI":                                   "",
	"MONGODB_DB_NAME":                             "pod_tracker",
	"MONGODB_CONNECT_TIMEOUT_IN_SECONDS":          10,
	"MONGODB_SERVER_SELECTION_TIMEOUT_IN_SECONDS": 5,
	"MONGODB_SOCKET_TIMEOUT_IN_SECONDS":           45,
	"LOGGER_LEVEL":                                "debug",
	"LOGGER_OUTPUT_FILENAME":                      "logger.log",
	"LOGGER_OUTPUT_ERROR_FILENAME":                "logger_error.log",
	"APP_ENV":                                     constvars.EnvironmentDevelopment,
	"APP_PORT":                                    ":4000",
	"APP_VERSION":                                 "v1.0",
	"APP_TIMEZONE":                                "UTC",
	"APP_FRONTEND_URL":                            "",
	"URL":                                         "",
	"APP_MAX_REQUESTS":                            50,
	"APP_SHUTDOWN_TIMEOUT_IN_SECONDS":             10,
	"APP_REQUEST_TIMEOUT_IN_SECONDS":              10,
	"APP_REQUEST_BODY_LIMIT_IN_MEGABYTE":          1,
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func NewDriverConfig() *DriverConfig {
	v := newViper()
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                             v.GetString("MONGO_URI"),
			DbName:                          v.GetString("MONGODB_DB_NAME"),
			ConnectTimeoutInSeconds:         v.GetInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS"),
			ServerSelectionTimeoutInSeconds: v.GetInt("MONGODB_SERVER_SELECTION_TIMEOUT_IN_SECONDS"),
			SocketTimeoutInSeconds:          v.GetInt("MONGODB_SOCKET_TIMEOUT_IN_SECONDS"),
		},
		Logger: Logger{
			Level:               v.GetString("LOGGER_LEVEL"),
			OutputFileName:      v.GetString("LOGGER_OUTPUT_FILENAME"),
			OutputErrorFileName: v.GetString("LOGGER_OUTPUT_ERROR_FILENAME"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	v := newViper()

	// Netlify exposes the site address as URL.
	frontendURL := v.GetString("APP_FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = v.GetString("URL")
	}

	return &InternalConfig{
		App: App{
			Env:                        v.GetString("APP_ENV"),
			Port:                       v.GetString("APP_PORT"),
			Version:                    v.GetString("APP_VERSION"),
			Timezone:                   v.GetString("APP_TIMEZONE"),
			FrontendURL:                frontendURL,
			MaxRequests:                v.GetInt("APP_MAX_REQUESTS"),
			ShutdownTimeoutInSeconds:   v.GetInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS"),
			RequestTimeoutInSeconds:    v.GetInt("APP_REQUEST_TIMEOUT_IN_SECONDS"),
			RequestBodyLimitInMegabyte: v.GetInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE"),
		},
	}
}

func (a App) IsProduction() bool {
	return a.Env == constvars.EnvironmentProduction
}

// Location is the zone "today" is read in for post-operative days. An
// unknown zone name falls back to UTC and is reported to the caller.
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC, err
	}
	return location, nil
}

func (a App) RequestTimeout() time.Duration {
	if a.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

// AllowedOrigins is "*" unless production has a frontend configured.
func (a App) AllowedOrigins() []string {
	if a.IsProduction() && a.FrontendURL != "" {
		return []string{a.FrontendURL}
	}
	return []string{"*"}
}
