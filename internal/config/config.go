// Package config collects the environment variables both services read.
// Everything except DATABASE_URL has a default so a bare container runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL   string
	Port          int
	MaxRetries    int
	RetryInterval time.Duration

	// RedisAddr empty means the cache is disabled.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSOrigins []string
	LogLevel    string
}

const (
	defaultMaxRetries    = 30
	defaultRetryInterval = 5
)

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", name, err)
	}
	return n, nil
}

// Load 讀取環境變數並套用預設值；defaultPort 依服務而異。
func Load(defaultPort int) (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	port, err := intEnv("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("無效的 PORT: %d", port)
	}

	maxRetries, err := intEnv("DB_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		return nil, fmt.Errorf("無效的 DB_MAX_RETRIES: %d", maxRetries)
	}

	retrySecs, err := intEnv("DB_RETRY_INTERVAL", defaultRetryInterval)
	if err != nil {
		return nil, err
	}
	if retrySecs < 0 {
		return nil, fmt.Errorf("無效的 DB_RETRY_INTERVAL: %d", retrySecs)
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	var origins []string
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		DatabaseURL:   dbURL,
		Port:          port,
		MaxRetries:    maxRetries,
		RetryInterval: time.Duration(retrySecs) * time.Second,
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CORSOrigins:   origins,
		LogLevel:      logLevel,
	}, nil
}
