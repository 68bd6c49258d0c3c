package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment values
// win over file values (godotenv.Load never overrides existing variables).
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_URL          PostgreSQL DSN
//	SECRET_KEY            JWT HMAC secret
//	ALGORITHM             JWT signing algorithm (HS256/HS384/HS512)
//	ACCESS_TOKEN_TTL      access token lifetime (Go duration, e.g. "96h")
//	CORS_ALLOWED_ORIGINS  comma-separated origins
//	GIN_MODE              gin run mode
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ALGORITHM"); ok {
		config.JWTAlgorithm = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			// A broken config value stops the process, same as a broken JSON file.
			panic(fmt.Errorf("config: invalid ACCESS_TOKEN_TTL %q: %w", v, err))
		}
		config.AccessTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		config.CORSAllowedOrigins = v
	}
	if v, ok := os.LookupEnv("GIN_MODE"); ok {
		config.GinMode = v
	}
}
