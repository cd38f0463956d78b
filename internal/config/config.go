package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
// It is built once in main and passed by reference; nothing mutates it afterwards.
type Config struct {
	ServerPort   string
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	JWTSecret    string
	JWTAlgorithm string
	SwaggerHost  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "recipe_db"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		SwaggerHost:  os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
