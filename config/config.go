package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken  string `yaml:"bot_token"`
		WebAppURL string `yaml:"webapp_url"`
	} `yaml:"telegram"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Gifts []string `yaml:"gifts"`
}

// envOverrides mirrors the environment variables the original deployment
// used; any that are set take precedence over the YAML file.
type envOverrides struct {
	BotToken     string `env:"BOT_TOKEN"`
	WebAppURL    string `env:"WEBAPP_URL"`
	DatabasePath string `env:"DATABASE_PATH"`
	Port         int    `env:"PORT"`
}

// LoadConfig reads the YAML configuration file, applies environment
// overrides and validates the result.
func LoadConfig(filePath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, err
	}
	if overrides.BotToken != "" {
		cfg.Telegram.BotToken = overrides.BotToken
	}
	if overrides.WebAppURL != "" {
		cfg.Telegram.WebAppURL = overrides.WebAppURL
	}
	if overrides.DatabasePath != "" {
		cfg.Database.Path = overrides.DatabasePath
	}
	if overrides.Port != 0 {
		cfg.Server.Port = overrides.Port
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "./gifts.db"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required (or set BOT_TOKEN)")
	}
	if c.Telegram.WebAppURL == "" {
		return fmt.Errorf("telegram.webapp_url is required (or set WEBAPP_URL)")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	for i, g := range c.Gifts {
		if g == "" {
			return fmt.Errorf("gifts[%d] must not be empty", i)
		}
	}
	return nil
}
