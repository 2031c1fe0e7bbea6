package utils

import "github.com/spf13/viper"

// GetEnv returns the application environment, as loaded by config.LoadConfig.
func GetEnv() string {
	return viper.GetString("ENV")
}

// IsProduction checks if the environment is production
func IsProduction() bool {
	return GetEnv() == "production"
}
