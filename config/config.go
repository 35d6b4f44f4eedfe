package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Configuration aggregates the per-concern configurations
type Configuration struct {
	Server       ServerConfiguration
	Database     DatabaseConfiguration
	Auth         AuthConfiguration
	Storage      StorageConfiguration
	Notification NotificationConfiguration
	Intake       IntakeConfiguration
}

// SetupConfig reads the env file (if present) and environment variables into viper
func SetupConfig() error {
	var configuration *Configuration

	viper.AddConfigPath("../../../..")
	viper.AddConfigPath("../../..")
	viper.AddConfigPath("../..")
	viper.AddConfigPath("..")
	viper.AddConfigPath(".")

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath == "" {
		envFilePath = ".env"
	}

	viper.SetConfigName(envFilePath)
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing env file is fine, the environment still provides values
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file, %s", err)
			return err
		}
	}

	if err := viper.Unmarshal(&configuration); err != nil {
		fmt.Printf("error decoding config, %v", err)
		return err
	}

	return nil
}

func init() {
	if err := SetupConfig(); err != nil {
		panic(fmt.Sprintf("config SetupConfig() error: %s", err))
	}
}
