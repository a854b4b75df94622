package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env               string
	Port              string
	ProjectID         string
	LogLevel          string
	Credentials       string // inline JSON credential list
	CredentialsSecret string // Secret Manager resource name holding the list
	ReminderLocation  string
}

func New() *Config {
	// .env is only present in local development
	_ = godotenv.Load()

	return &Config{
		Env:               getenv("ENV", "development"),
		Port:              getenv("PORT", "8080"),
		ProjectID:         os.Getenv("PROJECTID"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		Credentials:       os.Getenv("CREDENTIALS"),
		CredentialsSecret: os.Getenv("CREDENTIALSSECRET"),
		ReminderLocation:  getenv("REMINDERLOCATION", "Main Auditorium"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
