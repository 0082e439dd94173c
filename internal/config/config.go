package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Invocation transport: "stdio" (classic watchdog) or "http" (of-watchdog)
	HandlerMode string
	HTTPPort    string

	// SMTP relay (MailHog in local deployments)
	SMTPServer string
	SMTPPort   string
}

func Load() *Config {
	return &Config{
		HandlerMode: getEnv("HANDLER_MODE", "stdio"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		SMTPServer:  getEnv("SMTP_SERVER", "mailhog"),
		SMTPPort:    strconv.Itoa(getEnvInt("SMTP_PORT", 1025)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
