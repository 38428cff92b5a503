package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs from the environment. The JWT
// secret and bcrypt cost are handed to constructors explicitly; nothing here
// is read again after startup.
type Config struct {
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// StoreDriver selects the persistence backend: memory, postgres or mongo.
	StoreDriver string
	PostgresDSN string
	MongoURI    string
	MongoDB     string
}

func Load() *Config {
	return &Config{
		Port:        getEnvAsString("PORT", "8080"),
		JWTSecret:   getEnvAsString("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:      getEnvAsDuration("JWT_TTL", 168*time.Hour),
		BcryptCost:  getEnvAsInt("BCRYPT_COST", 10),
		StoreDriver: getEnvAsString("STORE_DRIVER", "memory"),
		PostgresDSN: getEnvAsString("POSTGRES_DSN", ""),
		MongoURI:    getEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnvAsString("MONGO_DB", "smartgrocery"),
	}
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
