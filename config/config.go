package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string  `yaml:"port"`
	Keyword     string  `yaml:"keyword"`
	DatabaseDSN string  `yaml:"database_dsn"`
	Ubidots     Ubidots `yaml:"ubidots"`
	Vonage      Vonage  `yaml:"vonage"`
	Slack       Slack   `yaml:"slack"`
}

type Ubidots struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

type Vonage struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

type Slack struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`
}

func (s Slack) Enabled() bool {
	return s.Token != "" && s.Channel != ""
}

// Load reads an optional .env file, then the YAML file named by
// SMS_OPERATOR_CONFIG, then applies environment variables on top.
func Load() (*Config, error) {
	cfg, err := LoadUbidots()
	if err != nil {
		return nil, err
	}
	if cfg.Vonage.APISecret == "" {
		return nil, errors.New("VONAGE_API_SECRET is required")
	}

	return cfg, nil
}

// LoadUbidots is Load for tools that only talk to Ubidots: the Vonage secret
// is not required.
func LoadUbidots() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}
	if cfg.Ubidots.Token == "" {
		return nil, errors.New("UBIDOTS_TOKEN is required")
	}

	return cfg, nil
}

func read() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:    "8000",
		Keyword: "UBIDOTS",
	}

	if path := os.Getenv("SMS_OPERATOR_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Keyword = getEnv("SMS_KEYWORD", cfg.Keyword)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.Ubidots.BaseURL = getEnv("UBIDOTS_BASE_URL", cfg.Ubidots.BaseURL)
	cfg.Ubidots.Token = getEnv("UBIDOTS_TOKEN", cfg.Ubidots.Token)
	cfg.Vonage.BaseURL = getEnv("VONAGE_BASE_URL", cfg.Vonage.BaseURL)
	cfg.Vonage.APIKey = getEnv("VONAGE_API_KEY", cfg.Vonage.APIKey)
	cfg.Vonage.APISecret = getEnv("VONAGE_API_SECRET", cfg.Vonage.APISecret)
	cfg.Slack.Token = getEnv("SLACK_TOKEN", cfg.Slack.Token)
	cfg.Slack.Channel = getEnv("SLACK_CHANNEL", cfg.Slack.Channel)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
