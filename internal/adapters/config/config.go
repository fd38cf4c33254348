package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr            string   `mapstructure:"http_addr"`
	RedisAddr           string   `mapstructure:"redis_addr"`
	RedisPassword       string   `mapstructure:"redis_password"`
	RedisDB             int      `mapstructure:"redis_db"`
	DirectoryBaseURL    string   `mapstructure:"directory_base_url"`
	DirectoryTimeoutSec int      `mapstructure:"directory_timeout_sec"`
	HistoryTTLSec       int      `mapstructure:"history_ttl_sec"`
	CacheTTLSec         int      `mapstructure:"cache_ttl_sec"`
	HistoryLimit        int      `mapstructure:"history_limit"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	LogLevel            string   `mapstructure:"log_level"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/community-oracle/")
	v.AddConfigPath(".")

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("redis_addr", "redis:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("directory_base_url", "")
	v.SetDefault("directory_timeout_sec", 5)
	v.SetDefault("history_ttl_sec", 24*60*60)
	v.SetDefault("cache_ttl_sec", 60*60)
	v.SetDefault("history_limit", 10)
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("ORACLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.DirectoryBaseURL == "" {
		return Config{}, fmt.Errorf("directory_base_url is required")
	}
	return cfg, nil
}

func (c Config) DirectoryTimeout() time.Duration {
	return time.Duration(c.DirectoryTimeoutSec) * time.Second
}

func (c Config) HistoryTTL() time.Duration {
	return time.Duration(c.HistoryTTLSec) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}
