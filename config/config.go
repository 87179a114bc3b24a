package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// insecureTokenSecret is the fallback the original deployment shipped
// with. Kept for compatibility; startup logs a warning when it is used.
const insecureTokenSecret = "token"

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// SSLMode is "require" in production, "disable" otherwise.
	SSLMode string
}

type AppConfig struct {
	Port        string
	Environment string
	TokenSecret string
	Postgres    PostgresConfig
}

// LoadConfig reads configuration from the environment, preferring a .env
// file when present. ENVIRONMENT=production selects the _PROD database
// pair and enables TLS; anything else selects the _DEV pair.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables")
	}

	env := getEnv("ENVIRONMENT", "development")

	suffix := "_DEV"
	sslMode := "disable"
	if env == "production" {
		suffix = "_PROD"
		sslMode = "require"
	}

	secret := getEnv("TOKEN_SECRET", insecureTokenSecret)
	if secret == insecureTokenSecret {
		log.Println("Warning: TOKEN_SECRET is not set, falling back to the insecure default")
	}

	return &AppConfig{
		Port:        getEnv("PORT", "3000"),
		Environment: env,
		TokenSecret: secret,
		Postgres: PostgresConfig{
			Host:     getEnv("PG_HOST"+suffix, "localhost"),
			Port:     getEnv("PG_PORT"+suffix, "5432"),
			User:     getEnv("PG_USER"+suffix, "postgres"),
			Password: getEnv("PG_PASSWORD"+suffix, ""),
			Database: getEnv("PG_DATABASE"+suffix, "planilla"),
			SSLMode:  sslMode,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
