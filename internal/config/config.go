package config

import (
	"os"
	"strconv"
	"strings"
)

// dsnFile is read when MYSQL_DSN is unset, so local setups can keep the
// connection string out of the environment.
const dsnFile = "mysql_dsn"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	StaticRoot  string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MySQLDSN:    loadDSN(),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		StaticRoot:  getEnv("STATIC_ROOT", "web/dist"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// loadDSN resolves the database connection string: environment first, then a
// local file, then a development default.
func loadDSN() string {
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		return v
	}
	if data, err := os.ReadFile(dsnFile); err == nil {
		if dsn := strings.TrimSpace(string(data)); dsn != "" {
			return dsn
		}
	}
	return "user:password@tcp(localhost:3306)/showroom?charset=utf8mb4&parseTime=True&loc=Local"
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
