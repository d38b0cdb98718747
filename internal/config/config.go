package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Document store configuration
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration

	// Token signing configuration
	JWTSecret     string
	JWTExpiration time.Duration
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 15*time.Second),

		// Document store configuration
		MongoURI:            os.Getenv("MONGODB_URI"),
		MongoDatabase:       getEnvString("MONGODB_DATABASE", "invoice_generator"),
		MongoConnectTimeout: getEnvDuration("MONGODB_CONNECT_TIMEOUT", 5*time.Second),

		// Token signing configuration
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: getEnvDuration("JWT_EXPIRATION", time.Hour),
	}

	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.MongoURI == "" {
		log.Println("Warning: MONGODB_URI is not set. Database connections will fail.")
	}

	if config.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set. Token issuance will produce unverifiable tokens.")
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration in seconds from an environment variable with
// a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	seconds, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return time.Duration(seconds) * time.Second
}
