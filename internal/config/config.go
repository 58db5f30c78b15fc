package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from an
// optional config.yaml overridden by ORDERANALYTICS_* environment variables.
type Config struct {
	Addr          string        `mapstructure:"addr"`
	DataDir       string        `mapstructure:"data_dir"`
	DatabaseURL   string        `mapstructure:"database_url"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	ReferenceDate string        `mapstructure:"reference_date"` // YYYY-MM-DD, overrides the dataset max date
}

// Load reads configuration from config.yaml (working directory, optional) and
// the environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "sample_data")
	v.SetDefault("cache_ttl", 10*time.Minute)
	// Declared empty so AutomaticEnv can populate them during Unmarshal.
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("reference_date", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ORDERANALYTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02", cfg.ReferenceDate); err != nil {
			return Config{}, fmt.Errorf("reference_date must be YYYY-MM-DD: %w", err)
		}
	}
	return cfg, nil
}
