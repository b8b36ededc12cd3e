package config

import (
	"os"
	"strings"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	DB         PostgresConfig
	Stripe     StripeConfig
	AssemblyAI AssemblyAIConfig
}

type PostgresConfig struct {
	Username string
	Password string
	URL      string
	Port     string
	Name     string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
	// PublicBaseURL is the externally reachable frontend URL used to
	// build checkout success/cancel redirect targets.
	PublicBaseURL string
}

type AssemblyAIConfig struct {
	APIKey string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		DB: PostgresConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PWD"),
			URL:      os.Getenv("POSTGRES_URL"),
			Port:     os.Getenv("POSTGRES_PORT"),
			Name:     os.Getenv("POSTGRES_DB"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			PriceID:       os.Getenv("STRIPE_PRICE_ID"),
			PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		},
	}

	return cfg, nil
}
