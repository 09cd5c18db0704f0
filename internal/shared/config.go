package shared

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	Store       string // mysql | memory
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	RateRPS     int
	RateBurst   int
	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		Store:       env("STORE", "mysql"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotelos?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		RateRPS:     atoi("RATE_LIMIT_RPS", 20),
		RateBurst:   atoi("RATE_LIMIT_BURST", 40),
		SeedWorkers: atoi("SEED_WORKERS", 4),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
