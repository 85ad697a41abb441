package config

import (
	"os"
	"strconv"
)

type Config struct {
	DBDriver             string
	DBPath               string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	Port                 string
	GinMode              string
	SweepIntervalSeconds int
}

func Load() *Config {
	return &Config{
		DBDriver:             getEnv("DB_DRIVER", "sqlite"),
		DBPath:               getEnv("DB_PATH", "lifedesk.db"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "3306"),
		DBUser:               getEnv("DB_USER", "lifedesk"),
		DBPassword:           getEnv("DB_PASSWORD", "lifedesk"),
		DBName:               getEnv("DB_NAME", "lifedesk"),
		Port:                 getEnv("PORT", "8080"),
		GinMode:              getEnv("GIN_MODE", "debug"),
		SweepIntervalSeconds: getEnvInt("SWEEP_INTERVAL_SECONDS", 60),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
