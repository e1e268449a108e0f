package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath  string
	AudioDir        string
	StaticFilesPath string

	// SessionSize is how many words a practice session asks for. A store
	// with fewer words yields a shorter session.
	SessionSize int

	// How long answer feedback stays on screen before the session moves
	// on. Incorrect answers get longer so the character comparison can be
	// read.
	CorrectFeedbackDelay   time.Duration
	IncorrectFeedbackDelay time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is applied first if present.
func Load() *Config {
	// Best effort; missing .env just means plain environment variables.
	_ = godotenv.Load()

	return &Config{
		ServerPort:             getEnv("PORT", "8080"),
		DatabaseType:           getEnv("DB_TYPE", "sqlite"),
		DatabasePath:           getEnv("DB_PATH", "./wordecho.db"),
		DatabaseURL:            getEnv("DB_URL", ""),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "./migrations"),
		AudioDir:               getEnv("AUDIO_DIR", "./audio"),
		StaticFilesPath:        getEnv("STATIC_PATH", "./static"),
		SessionSize:            getEnvInt("SESSION_SIZE", 10),
		CorrectFeedbackDelay:   getEnvDuration("CORRECT_FEEDBACK_DELAY", 1200*time.Millisecond),
		IncorrectFeedbackDelay: getEnvDuration("INCORRECT_FEEDBACK_DELAY", 3*time.Second),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
