package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Port           uint16   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	RabbitmqReminderEventsExchange string `env:"RABBITMQ_REMINDER_EVENTS_EXCHANGE" envDefault:"reminder-events"`

	OpenRouterBaseURL string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	OpenRouterAPIKey  string        `env:"OPENROUTER_API_KEY,required"`
	OpenRouterModel   string        `env:"OPENROUTER_MODEL" envDefault:"openai/gpt-3.5-turbo"`
	OpenRouterTimeout time.Duration `env:"OPENROUTER_TIMEOUT" envDefault:"30s"`

	ReminderTimeZone string `env:"REMINDER_TIME_ZONE" envDefault:"UTC"`

	CreateReminderRateLimitPerMinute uint16 `env:"CREATE_REMINDER_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	if _, err := url.Parse(config.OpenRouterBaseURL); err != nil {
		return nil, fmt.Errorf("invalid OPENROUTER_BASE_URL value: %w", err)
	}
	return config, nil
}
