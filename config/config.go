package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Backend targets
	Endpoints EndpointsConfig

	// Upload policy enforced client-side before dispatch
	Upload UploadConfig

	// Outbound request shaping
	Gateway GatewayConfig

	// Credential persistence
	Credential CredentialConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EndpointsConfig is the three fixed backend base addresses.
type EndpointsConfig struct {
	AuthBaseURL string
	TaskBaseURL string
	FileBaseURL string
}

type UploadConfig struct {
	AllowedExtensions []string
	MaxSizeBytes      int64
}

type GatewayConfig struct {
	RequestsPerMinute int // 0 disables the outbound limiter
	DownloadCacheSize int
	DownloadCacheTTL  time.Duration
}

type CredentialConfig struct {
	FilePath string // empty means the per-user config dir default
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/ezlife/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/ezlife/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Endpoints.AuthBaseURL = viper.GetString("endpoints.auth_base_url")
	cfg.Endpoints.TaskBaseURL = viper.GetString("endpoints.task_base_url")
	cfg.Endpoints.FileBaseURL = viper.GetString("endpoints.file_base_url")

	cfg.Upload.AllowedExtensions = viper.GetStringSlice("upload.allowed_extensions")
	cfg.Upload.MaxSizeBytes = viper.GetInt64("upload.max_size_bytes")

	cfg.Gateway.RequestsPerMinute = viper.GetInt("gateway.requests_per_minute")
	cfg.Gateway.DownloadCacheSize = viper.GetInt("gateway.download_cache_size")
	cfg.Gateway.DownloadCacheTTL = viper.GetDuration("gateway.download_cache_ttl")

	cfg.Credential.FilePath = viper.GetString("credential.file_path")

	if cfg.Endpoints.AuthBaseURL == "" || cfg.Endpoints.TaskBaseURL == "" || cfg.Endpoints.FileBaseURL == "" {
		return nil, fmt.Errorf("all three endpoint base URLs must be configured")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("endpoints.auth_base_url", "http://localhost:8001")
	viper.SetDefault("endpoints.task_base_url", "http://localhost:8000")
	viper.SetDefault("endpoints.file_base_url", "http://localhost:8003")

	viper.SetDefault("upload.allowed_extensions", []string{"jpg", "jpeg", "png", "pdf", "txt"})
	viper.SetDefault("upload.max_size_bytes", int64(5*1024*1024))

	viper.SetDefault("gateway.requests_per_minute", 0)
	viper.SetDefault("gateway.download_cache_size", 32)
	viper.SetDefault("gateway.download_cache_ttl", "5m")
}
