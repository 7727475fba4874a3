package config

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort       = "8080"
	DefaultBaseURL    = "https://youtube.googleapis.com/youtube/v3"
	DefaultMaxResults = 5
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	YouTube YouTubeConfig `mapstructure:"youtube"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// Address 回傳 gin 監聽用的位址
func (s ServerConfig) Address() string {
	return ":" + s.Port
}

type YouTubeConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxResults int    `mapstructure:"max_results"`
}

// 環境變數與設定鍵的對應
var envBindings = map[string]string{
	"server.port":         "PORT",
	"server.mode":         "GIN_MODE",
	"youtube.api_key":     "YOUTUBE_API_KEY",
	"youtube.base_url":    "YOUTUBE_API_BASE_URL",
	"youtube.max_results": "YOUTUBE_MAX_RESULTS",
}

// Load 讀取 .env、config.yaml 與環境變數，環境變數優先
func Load() (*Config, error) {
	// .env 不存在時直接略過
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./pkg/config")
	v.AddConfigPath(".")

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("youtube.base_url", DefaultBaseURL)
	v.SetDefault("youtube.max_results", DefaultMaxResults)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.New("server port must not be empty")
	}
	switch c.Server.Mode {
	case "", gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	// 每次最多回傳 5 部影片
	if c.YouTube.MaxResults < 1 || c.YouTube.MaxResults > DefaultMaxResults {
		return fmt.Errorf("youtube max results must be between 1 and %d, got %d", DefaultMaxResults, c.YouTube.MaxResults)
	}
	return nil
}
