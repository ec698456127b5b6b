/**
 * @description
 * This package handles the configuration management for the Ziganya client.
 * It uses the Viper library to read configuration from environment variables,
 * providing the single injected configuration object every controller and
 * client is built from.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the client. These values
// are loaded from environment variables.
type Config struct {
	APIBaseURL            string `mapstructure:"API_BASE_URL"`
	APIToken              string `mapstructure:"API_TOKEN"`
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`

	RabbitMQURL    string `mapstructure:"RABBITMQ_URL"`
	ReportExchange string `mapstructure:"REPORT_EXCHANGE"`
	ReportQueue    string `mapstructure:"REPORT_QUEUE"`

	RedisURL       string `mapstructure:"REDIS_URL"`
	PrefsKeyPrefix string `mapstructure:"PREFS_KEY_PREFIX"`

	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`

	FeedbackHideMillis       int `mapstructure:"FEEDBACK_HIDE_MS"`
	FeedbackDetailHideMillis int `mapstructure:"FEEDBACK_DETAIL_HIDE_MS"`

	ReportRefreshSpec string `mapstructure:"REPORT_REFRESH_CRON"`
	ExportDir         string `mapstructure:"EXPORT_DIR"`
}

// LoadConfig reads configuration from environment variables from the given
// path. It uses Viper to automatically bind environment variables to the
// Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REPORT_EXCHANGE", "ziganya.events")
	viper.SetDefault("REPORT_QUEUE", "ziganya_client.report_updates")
	viper.SetDefault("PREFS_KEY_PREFIX", "ziganya:prefs")
	viper.SetDefault("DEFAULT_LANGUAGE", "en")
	viper.SetDefault("FEEDBACK_HIDE_MS", 3000)
	viper.SetDefault("FEEDBACK_DETAIL_HIDE_MS", 8000)
	viper.SetDefault("REPORT_REFRESH_CRON", "@every 5m")

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("API_BASE_URL")
	_ = viper.BindEnv("API_TOKEN")
	_ = viper.BindEnv("REQUEST_TIMEOUT_SECONDS")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("REPORT_EXCHANGE")
	_ = viper.BindEnv("REPORT_QUEUE")
	_ = viper.BindEnv("REDIS_URL")
	_ = viper.BindEnv("PREFS_KEY_PREFIX")
	_ = viper.BindEnv("DEFAULT_LANGUAGE")
	_ = viper.BindEnv("FEEDBACK_HIDE_MS")
	_ = viper.BindEnv("FEEDBACK_DETAIL_HIDE_MS")
	_ = viper.BindEnv("REPORT_REFRESH_CRON")
	_ = viper.BindEnv("EXPORT_DIR")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	// Unmarshal the configuration into the Config struct.
	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	config.APIBaseURL = strings.TrimRight(strings.TrimSpace(config.APIBaseURL), "/")
	config.APIToken = strings.TrimSpace(config.APIToken)
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.DefaultLanguage = strings.ToLower(strings.TrimSpace(config.DefaultLanguage))

	if config.RequestTimeoutSeconds <= 0 {
		log.Printf("level=warn component=config msg=\"non-positive request timeout configured; using default\" timeout_seconds=%d", config.RequestTimeoutSeconds)
		config.RequestTimeoutSeconds = 30
	}
	if config.FeedbackHideMillis <= 0 {
		config.FeedbackHideMillis = 3000
	}
	if config.FeedbackDetailHideMillis <= 0 {
		config.FeedbackDetailHideMillis = 8000
	}
	if config.FeedbackDetailHideMillis < config.FeedbackHideMillis {
		log.Printf("level=warn component=config msg=\"detail hide delay below outcome delay; raising\" detail_ms=%d outcome_ms=%d", config.FeedbackDetailHideMillis, config.FeedbackHideMillis)
		config.FeedbackDetailHideMillis = config.FeedbackHideMillis
	}
	if strings.TrimSpace(config.ReportRefreshSpec) == "" {
		config.ReportRefreshSpec = "@every 5m"
	}

	return
}
