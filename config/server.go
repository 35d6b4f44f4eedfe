package config

import (
	"sync"

	"github.com/spf13/viper"
)

// ServerConfiguration defines the HTTP server settings
type ServerConfiguration struct {
	Debug            bool
	Host             string
	Port             string
	Timezone         string
	Environment      string
	SentryDSN        string
	RedisURL         string
	PublicBaseURL    string
	RateLimitAPI     int
	RateLimitDefault int
}

var (
	serverConfigOnce sync.Once
	serverConfig     *ServerConfiguration
)

// ServerConfig returns the server configuration.
// The config is initialized once and cached to avoid concurrent map writes.
func ServerConfig() *ServerConfiguration {
	serverConfigOnce.Do(func() {
		viper.SetDefault("DEBUG", false)
		viper.SetDefault("SERVER_HOST", "0.0.0.0")
		viper.SetDefault("SERVER_PORT", "8000")
		viper.SetDefault("SERVER_TIMEZONE", "UTC")
		viper.SetDefault("ENVIRONMENT", "local")
		viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
		viper.SetDefault("RATE_LIMIT_API", 30)
		viper.SetDefault("RATE_LIMIT_DEFAULT", 100)

		serverConfig = &ServerConfiguration{
			Debug:            viper.GetBool("DEBUG"),
			Host:             viper.GetString("SERVER_HOST"),
			Port:             viper.GetString("SERVER_PORT"),
			Timezone:         viper.GetString("SERVER_TIMEZONE"),
			Environment:      viper.GetString("ENVIRONMENT"),
			SentryDSN:        viper.GetString("SENTRY_DSN"),
			RedisURL:         viper.GetString("REDIS_URL"),
			PublicBaseURL:    viper.GetString("PUBLIC_BASE_URL"),
			RateLimitAPI:     viper.GetInt("RATE_LIMIT_API"),
			RateLimitDefault: viper.GetInt("RATE_LIMIT_DEFAULT"),
		}
	})
	return serverConfig
}
