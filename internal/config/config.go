package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type CORSConfig struct {
	// Origins is the list of allowed origins, parsed from the
	// comma-separated CORS_ORIGINS variable. Defaults to ["*"].
	Origins []string
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. MONGO_URL and DB_NAME are required; a missing value is a fatal
// configuration error and the caller must not start serving.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("CORS_ORIGINS", "*")

	uri := viper.GetString("MONGO_URL")
	if uri == "" {
		return nil, fmt.Errorf("environment variable MONGO_URL is required")
	}
	dbName := viper.GetString("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("environment variable DB_NAME is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:      uri,
			Database: dbName,
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
