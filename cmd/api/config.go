package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bookstore/internal/database"
)

type config struct {
	Addr              string
	Env               string
	DatabaseDSN       string
	QueryTimeout      time.Duration
	MaxBodyBytes      int64
	AllowedOrigins    []string
	EnableHSTS        bool
	RateLimitRPS      float64
	RateLimitBurst    int
	TrustProxyHeaders bool
	ShutdownTimeout   time.Duration
}

func loadConfig() config {
	cfg := config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		Env:               getEnv("APP_ENV", "development"),
		QueryTimeout:      getEnvDuration("DB_QUERY_TIMEOUT", 0),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		AllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:        os.Getenv("ENABLE_HSTS") == "true",
		RateLimitRPS:      getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    getEnvInt("RATE_LIMIT_BURST", 40),
		TrustProxyHeaders: os.Getenv("TRUST_PROXY_HEADERS") == "true",
		ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	cfg.DatabaseDSN = database.DSN()
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %g", key, v, def)
		return def
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c config) String() string {
	return fmt.Sprintf("addr=%s env=%s db=%s query_timeout=%s max_body_bytes=%d rate_limit_rps=%g",
		c.Addr, c.Env, database.RedactDSN(c.DatabaseDSN), c.QueryTimeout, c.MaxBodyBytes, c.RateLimitRPS)
}
