package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env              string
	Port             string
	DBURL            string
	RedisAddr        string
	SigningSecret    string
	Issuer           string
	AccessExpiryMin  int
	RefreshExpiryMin int
	SweepIntervalMin int
}

func Load() *Config {
	return &Config{
		Env:              getEnv("ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBURL:            mustGetEnv("DB_URL"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		SigningSecret:    mustGetEnv("SIGNING_SECRET"),
		Issuer:           getEnv("JWT_ISSUER", "user-service"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),
		SweepIntervalMin: getEnvAsInt("RESET_SWEEP_INTERVAL", 60),
	}
}

func (c *Config) AccessExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryMin) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMin) * time.Minute
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
