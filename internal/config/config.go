package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr            string
	Port                  string
	DatabasePath          string
	SessionSecret         string
	GinMode               string
	AppEnv                string
	Timezone              string
	PhasesFile            string
	LogFile               string
	LogLevel              string
	BootstrapUserName     string
	BootstrapUserPassword string
	LoginRatePerMinute    float64
	LoginRateBurst        int
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "zenflow.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "zenflow-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return AppConfig{
		ListenAddr:            listenAddr,
		Port:                  port,
		DatabasePath:          databasePath,
		SessionSecret:         sessionSecret,
		GinMode:               ginMode,
		AppEnv:                appEnv,
		Timezone:              strings.TrimSpace(os.Getenv("TIMEZONE")),
		PhasesFile:            strings.TrimSpace(os.Getenv("PHASES_FILE")),
		LogFile:               strings.TrimSpace(os.Getenv("LOG_FILE")),
		LogLevel:              logLevel,
		BootstrapUserName:     strings.TrimSpace(os.Getenv("BOOTSTRAP_USER_NAME")),
		BootstrapUserPassword: strings.TrimSpace(os.Getenv("BOOTSTRAP_USER_PASSWORD")),
		LoginRatePerMinute:    envFloat("LOGIN_RATE_PER_MINUTE", 10),
		LoginRateBurst:        envInt("LOGIN_RATE_BURST", 5),
	}
}

// Location 返回用于划分自然日与小时的时区，未配置时使用 time.Local，
// 配置无效时打印警告后同样回退
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[config] invalid TIMEZONE %q, falling back to local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		log.Printf("[config] invalid %s %q, using %v", key, raw, fallback)
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("[config] invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}
