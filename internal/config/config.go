package config

import (
	"os"
)

type Config struct {
	DatabasePath   string
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins string

	MailgunDomain      string
	MailgunAPIKey      string
	MailgunSenderEmail string
	MailgunSenderName  string
}

func Load() *Config {
	cfg := &Config{
		DatabasePath:   getEnv("DATABASE_PATH", "triptrove.db"),
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:8080"),

		MailgunDomain:      getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:      getEnv("MAILGUN_API_KEY", ""),
		MailgunSenderEmail: getEnv("MAILGUN_SENDER_EMAIL", "noreply@triptrove.app"),
		MailgunSenderName:  getEnv("MAILGUN_SENDER_NAME", "TripTrove"),
	}
	return cfg
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
