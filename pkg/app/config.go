package app

import (
	"time"

	"github.com/spf13/viper"
)

// BaseConfig contains the configuration shared by the example programs.
type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`

	AppName string `mapstructure:"app_name"`

	ListenAddress string `mapstructure:"listen_address"`

	ShutdownGracePeriod time.Duration `mapstructure:"shutdown_grace_period"`

	// Optional. Metrics, traces and forwarded logs are only reported when set.
	NewRelicLicenseKey string `mapstructure:"new_relic_license_key"`
}

var defaultConfig = BaseConfig{
	LogLevel: "info",

	ListenAddress: ":8080",

	ShutdownGracePeriod: 10 * time.Second,
}

func init() {
	_ = viper.BindEnv("log_level", "LOG_LEVEL")

	_ = viper.BindEnv("app_name", "APP_NAME")

	_ = viper.BindEnv("listen_address", "LISTEN_ADDRESS")

	_ = viper.BindEnv("shutdown_grace_period", "SHUTDOWN_GRACE_PERIOD")

	_ = viper.BindEnv("new_relic_license_key", "NEW_RELIC_LICENSE_KEY")
}
