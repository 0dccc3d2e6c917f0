// file: internal/config/config.go
// version: 1.1.0
// guid: 0bcc4623-d0c4-45e6-bf69-d32f5260070c

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	VocabPath    string
	VocabColumn  string
	Threshold    int
	EntityLabels []string
	Workers      int
	SpeakCommand string
	Server       ServerConfig
}

// ServerConfig holds settings for the recognize API.
type ServerConfig struct {
	Host              string
	Port              string
	RequestsPerMinute int
	Burst             int
}

var AppConfig Config

// InitConfig initializes the application configuration from viper state
// (flags, config file, environment) with engine defaults applied.
func InitConfig() {
	// Set defaults
	viper.SetDefault("threshold", 85)
	viper.SetDefault("vocab_column", "Molecule")
	viper.SetDefault("entity_labels", []string{"ORG", "PRODUCT"})
	viper.SetDefault("workers", 1)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.requests_per_minute", 120)
	viper.SetDefault("server.burst", 20)

	AppConfig = Config{
		VocabPath:    viper.GetString("vocab_path"),
		VocabColumn:  viper.GetString("vocab_column"),
		Threshold:    viper.GetInt("threshold"),
		EntityLabels: viper.GetStringSlice("entity_labels"),
		Workers:      viper.GetInt("workers"),
		SpeakCommand: viper.GetString("speak_command"),
		Server: ServerConfig{
			Host:              viper.GetString("server.host"),
			Port:              viper.GetString("server.port"),
			RequestsPerMinute: viper.GetInt("server.requests_per_minute"),
			Burst:             viper.GetInt("server.burst"),
		},
	}

	if AppConfig.Workers < 1 {
		AppConfig.Workers = 1
	}
}
