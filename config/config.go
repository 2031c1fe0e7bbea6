package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisViewDB   int    `mapstructure:"REDIS_VIEW_DB"`
	RedisFacetDB  int    `mapstructure:"REDIS_FACET_DB"`
	RedisWorkerDB int    `mapstructure:"REDIS_WORKER_DB"`

	// Display window for the vertical timeline views.
	DisplayStartHour int `mapstructure:"DISPLAY_START_HOUR"`
	DisplayEndHour   int `mapstructure:"DISPLAY_END_HOUR"`

	// View memoization TTL in seconds.
	ViewCacheTTL int `mapstructure:"VIEW_CACHE_TTL"`

	// Facet catalog refresh interval for the background worker.
	FacetRefreshEvery string `mapstructure:"FACET_REFRESH_EVERY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_VIEW_DB", 0)
	viper.SetDefault("REDIS_FACET_DB", 1)
	viper.SetDefault("REDIS_WORKER_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DISPLAY_START_HOUR", 8)
	viper.SetDefault("DISPLAY_END_HOUR", 23)
	viper.SetDefault("VIEW_CACHE_TTL", 60)
	viper.SetDefault("FACET_REFRESH_EVERY", "@every 15m")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
