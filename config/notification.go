package config

import "github.com/spf13/viper"

// NotificationConfiguration defines the outbound email settings
type NotificationConfiguration struct {
	EmailProvider    string
	EmailAPIKey      string
	EmailDomain      string
	EmailFromAddress string
	OpsEmail         string
	DigestEnabled    bool
}

// NotificationConfig sets the notification configuration
func NotificationConfig() (config *NotificationConfiguration) {
	viper.SetDefault("EMAIL_PROVIDER", "sendgrid")
	viper.SetDefault("EMAIL_DOMAIN", "api.sendgrid.com")
	viper.SetDefault("EMAIL_FROM_ADDRESS", "no-reply@creditintake.local")
	viper.SetDefault("INTAKE_DIGEST_ENABLED", false)

	return &NotificationConfiguration{
		EmailProvider:    viper.GetString("EMAIL_PROVIDER"),
		EmailAPIKey:      viper.GetString("EMAIL_API_KEY"),
		EmailDomain:      viper.GetString("EMAIL_DOMAIN"),
		EmailFromAddress: viper.GetString("EMAIL_FROM_ADDRESS"),
		OpsEmail:         viper.GetString("OPS_EMAIL"),
		DigestEnabled:    viper.GetBool("INTAKE_DIGEST_ENABLED"),
	}
}
