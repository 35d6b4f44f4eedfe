package config

import (
	"time"

	"github.com/spf13/viper"
)

// StorageConfiguration defines the object storage settings for vendor form uploads
type StorageConfiguration struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PublicURL       string
	PresignExpiry   time.Duration
}

// StorageConfig sets the object storage configuration
func StorageConfig() *StorageConfiguration {
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_PRESIGN_EXPIRY", 3600)

	return &StorageConfiguration{
		Bucket:          viper.GetString("STORAGE_BUCKET"),
		Region:          viper.GetString("STORAGE_REGION"),
		AccessKeyID:     viper.GetString("STORAGE_ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString("STORAGE_SECRET_ACCESS_KEY"),
		Endpoint:        viper.GetString("STORAGE_ENDPOINT"),
		PublicURL:       viper.GetString("STORAGE_PUBLIC_URL"),
		PresignExpiry:   time.Duration(viper.GetInt("STORAGE_PRESIGN_EXPIRY")) * time.Second,
	}
}
