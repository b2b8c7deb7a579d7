package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	// DatabaseDSN is optional; when empty the service runs against the
	// seeded in-memory credential store.
	DatabaseDSN string

	AccessSecret  string
	RefreshSecret string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func Load() Config {

	cfg := Config{

		AppPort: getenv("APP_PORT", "4000"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),

		AccessTTL:  getenvSeconds("ACCESS_EXPIRES", 900),
		RefreshTTL: getenvSeconds("REFRESH_EXPIRES", 604800),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvSeconds reads a whole-seconds value (ACCESS_EXPIRES / REFRESH_EXPIRES
// keep the deployment convention of plain second counts).
func getenvSeconds(key string, fallback int64) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
