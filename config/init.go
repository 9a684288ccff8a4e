package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/services/imapfetch"
	"github.com/customeros/unsublink/services/mailer"
)

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:      &AppConfig{},
		Logger:         &logger.Config{},
		Tracing:        &tracing.JaegerConfig{},
		DatabaseConfig: &DatabaseConfig{},
		IMAPConfig:     &imapfetch.Config{},
		SMTPConfig:     &mailer.Config{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading unsublink config: %v", err)
	}

	return config, nil
}
