package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	HTTPAddr  string
	StaticDir string

	// Bootstrap admin, seeded before connections are accepted.
	AdminEmail    string
	AdminPassword string
	AdminUsername string
	AdminName     string

	SnowflakeNode int64
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr:      getEnv("HTTP_ADDR", ":3000"),
		StaticDir:     getEnv("STATIC_DIR", "web"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@linkora.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		AdminUsername: getEnv("ADMIN_USERNAME", "@admin"),
		AdminName:     getEnv("ADMIN_NAME", "Linkora Admin"),
		SnowflakeNode: getEnvInt64("SNOWFLAKE_NODE", 1),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
