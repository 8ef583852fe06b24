package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. Outside
// production a .env file in the working directory is loaded first; a
// missing file is not an error.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address (e.g. ":8080")
//	DATABASE_DSN          PostgreSQL DSN
//	REDIS_DSN             Redis URL for the dashboard cache (optional)
//	JWT_SECRET            HMAC signing secret (required, no default)
//	TOKEN_VALIDITY_HOURS  session token lifetime in hours
//	APP_ENV               "development" or "production"
//	SEED_ON_START         "true"/"false"
func parseEnv(config *Config) {
	if os.Getenv("APP_ENV") != EnvProduction {
		_ = godotenv.Load()
	}

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("REDIS_DSN"); ok {
		config.RedisDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.JWTSecret = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_HOURS"); ok {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			config.TokenValidity = time.Duration(hours) * time.Hour
		}
	}
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		config.Environment = v
	}
	if v, ok := os.LookupEnv("SEED_ON_START"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SeedOnStart = b
		}
	}
}
