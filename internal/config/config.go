package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env        string
	ServerPort string
	APISecret  string

	StoreBackend string
	DataDir      string

	BarberAPIURL     string
	BarberAPIKey     string
	BarberAPITimeout time.Duration
	BarberFallback   bool

	RedisAddr      string
	RedisPassword  string
	RedisCacheDB   int
	BarberCacheTTL time.Duration

	MaxRequestsPerMin int
}

func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		APISecret:  getEnv("API_SECRET", "changeme"),

		StoreBackend: getEnv("STORE_BACKEND", "file"),
		DataDir:      getEnv("DATA_DIR", "data"),

		BarberAPIURL:     getEnv("BARBER_API_URL", ""),
		BarberAPIKey:     getEnv("BARBER_API_KEY", ""),
		BarberAPITimeout: getSeconds("BARBER_API_TIMEOUT_SECONDS", 10*time.Second),
		BarberFallback:   getBool("BARBER_FALLBACK_ENABLED", true),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisCacheDB:   getInt("REDIS_CACHE_DB", 0),
		BarberCacheTTL: getSeconds("BARBER_CACHE_TTL_SECONDS", 5*time.Minute),

		MaxRequestsPerMin: getInt("MAX_REQUESTS_PER_MIN", 120),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
