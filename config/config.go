package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	Planner PlannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// PlannerConfig tunes the task suggestion service.
type PlannerConfig struct {
	CacheSize    int // analyze result cache entries
	SuggestLimit int // default top-N for /suggest/
	MaxBatchSize int // largest accepted task batch
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

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
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS origins may arrive as a comma-separated env string
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	} else {
		origins = viper.GetStringSlice("cors.allowed_origins")
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.CORS.AllowedOrigins = origins

	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	cfg.Planner.CacheSize = viper.GetInt("planner.cache_size")
	cfg.Planner.SuggestLimit = viper.GetInt("planner.suggest_limit")
	cfg.Planner.MaxBatchSize = viper.GetInt("planner.max_batch_size")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("planner.cache_size", 128)
	viper.SetDefault("planner.suggest_limit", 3)
	viper.SetDefault("planner.max_batch_size", 500)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port: %d", cfg.HTTPServer.Port)
	}
	if cfg.Planner.CacheSize <= 0 {
		return fmt.Errorf("planner.cache_size must be positive")
	}
	if cfg.Planner.SuggestLimit <= 0 {
		return fmt.Errorf("planner.suggest_limit must be positive")
	}
	if cfg.Planner.MaxBatchSize <= 0 {
		return fmt.Errorf("planner.max_batch_size must be positive")
	}
	return nil
}
