// file: config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 保存全部运行时配置，由环境变量注入，不在代码里硬编码 DSN
type Config struct {
	ListenAddr    string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	SessionTTL    time.Duration
	CookieName    string
	TemplateGlob  string
}

// Load 读取 .env（若存在）并组装配置
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: no .env file loaded: %v", err)
		}
	}

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		MySQLDSN:      getEnv("MYSQL_DSN", "root:123456@tcp(localhost:3306)/practicectf?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		JWTSecret:     getEnv("JWT_SECRET", "a-very-secure-secret-that-should-be-in-env"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CookieName:    getEnv("SESSION_COOKIE", "practicectf_session"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "templates/*.html"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
