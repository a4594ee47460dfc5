package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the application. Every field has a
// default, so a missing environment variable never fails startup.
type Config struct {
	// Server configuration
	ServerHost string `env:"SERVER_HOST" env-default:"0.0.0.0"`
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`

	// Database configuration
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"password"`
	DBName     string `env:"DB_NAME" env-default:"cocktails_db"`
	DBSSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`

	// Embedding model configuration. The API URL points at any
	// OpenAI-compatible embeddings endpoint (Ollama, text-embeddings-inference).
	EmbeddingAPIURL string `env:"EMBEDDING_API_URL" env-default:"http://localhost:11434/v1"`
	EmbeddingAPIKey string `env:"EMBEDDING_API_KEY" env-default:""`
	ModelName       string `env:"MODEL_NAME" env-default:"all-minilm:l6-v2"`
	EmbeddingDim    int    `env:"EMBEDDING_DIM" env-default:"384"`

	// Redis configuration (query-embedding cache)
	RedisHost     string `env:"REDIS_HOST" env-default:"localhost"`
	RedisPort     string `env:"REDIS_PORT" env-default:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to the documented defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}
	return cfg, nil
}

// RedisAddr returns the host:port address of the Redis instance.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
