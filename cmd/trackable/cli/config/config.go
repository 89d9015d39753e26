// Package config provides configuration management for the trackable CLI.
package config

// Config represents the trackable CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
	Progress string `mapstructure:"progress"`
}
