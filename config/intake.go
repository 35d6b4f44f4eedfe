package config

import (
	"time"

	"github.com/spf13/viper"
)

// IntakeConfiguration defines intake processing settings
type IntakeConfiguration struct {
	MaxUploadBytes    int64
	ShippingRetention time.Duration
	DigestSendTime    string
}

// IntakeConfig sets the intake configuration
func IntakeConfig() *IntakeConfiguration {
	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20) // 10 MiB
	viper.SetDefault("SHIPPING_RETENTION_DAYS", 180)
	viper.SetDefault("INTAKE_DIGEST_SEND_TIME", "06:00")

	return &IntakeConfiguration{
		MaxUploadBytes:    viper.GetInt64("MAX_UPLOAD_BYTES"),
		ShippingRetention: time.Duration(viper.GetInt("SHIPPING_RETENTION_DAYS")) * 24 * time.Hour,
		DigestSendTime:    viper.GetString("INTAKE_DIGEST_SEND_TIME"),
	}
}
