package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DatabaseConfiguration defines the database connection settings
type DatabaseConfiguration struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DBConfig builds the Postgres DSN from the database configuration
func DBConfig() string {
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "creditintake")
	viper.SetDefault("DB_SSL_MODE", "disable")

	conf := &DatabaseConfiguration{
		Host:     viper.GetString("DB_HOST"),
		Port:     viper.GetInt("DB_PORT"),
		User:     viper.GetString("DB_USER"),
		Password: viper.GetString("DB_PASSWORD"),
		Name:     viper.GetString("DB_NAME"),
		SSLMode:  viper.GetString("DB_SSL_MODE"),
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		conf.User, conf.Password, conf.Host, conf.Port, conf.Name, conf.SSLMode,
	)
}
