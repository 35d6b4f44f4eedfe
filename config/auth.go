package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// AuthConfiguration defines the authentication & authorization settings
type AuthConfiguration struct {
	Secret          string
	AdminToken      string
	ExportToken     string
	SessionLifespan time.Duration
	CsrfLifespan    time.Duration
}

var (
	authConfigOnce sync.Once
	authConfig     *AuthConfiguration
)

// AuthConfig returns the authentication & authorization configurations.
// The config is initialized once and cached to avoid concurrent map writes.
func AuthConfig() *AuthConfiguration {
	authConfigOnce.Do(func() {
		viper.SetDefault("SESSION_LIFESPAN", 720) // 12 hours
		viper.SetDefault("CSRF_LIFESPAN", 60)

		authConfig = &AuthConfiguration{
			Secret:          viper.GetString("SECRET"),
			AdminToken:      viper.GetString("ADMIN_TOKEN"),
			ExportToken:     viper.GetString("EXPORT_TOKEN"),
			SessionLifespan: time.Duration(viper.GetInt("SESSION_LIFESPAN")) * time.Minute,
			CsrfLifespan:    time.Duration(viper.GetInt("CSRF_LIFESPAN")) * time.Minute,
		}
	})
	return authConfig
}
