package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ModelSettings struct {
		Model       string  `yaml:"model"`
		Temperature float64 `yaml:"temperature"`
		TopP        float64 `yaml:"top_p"`
	} `yaml:"model_settings"`
	Headers struct {
		Referer string `yaml:"referer"`
		Title   string `yaml:"title"`
	} `yaml:"headers"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Session struct {
		TTLHours float64 `yaml:"ttl_hours"`
	} `yaml:"session"`
	RoastLogPath string `yaml:"roast_log_path"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		// Set default values
		config.applyDefaults()
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.ModelSettings.Model == "" {
		c.ModelSettings.Model = "google/gemini-2.0-flash-lite-preview-02-05:free"
	}
	if c.ModelSettings.Temperature == 0 {
		c.ModelSettings.Temperature = 1
	}
	if c.ModelSettings.TopP == 0 {
		c.ModelSettings.TopP = 1
	}
	if c.Headers.Referer == "" {
		c.Headers.Referer = "https://yourwebsite.com"
	}
	if c.Headers.Title == "" {
		c.Headers.Title = "WahalaBot"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8000"
	}
	if c.RoastLogPath == "" {
		c.RoastLogPath = "roasts.log"
	}
}
