package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        int
	PricingPath string
	OutputDir   string
	MaxUploadMB int

	PriceAPIBaseURL   string
	PriceAPIToken     string
	PriceAPIRateRPS   int
	PriceAPITimeoutMs int

	IMAPHost     string
	IMAPPort     int
	IMAPSecure   bool
	IMAPUser     string
	IMAPPassword string
	IMAPMarkSeen bool

	ReportListenerLabel       string
	ReportListenerIntervalSec int
	ReportListenerFetchMax    int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:        getEnvInt("PORT", 4000),
		PricingPath: getEnv("PRICING_PATH", filepath.Join(cwd, "data", "pricing.json")),
		OutputDir:   getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 20),

		PriceAPIBaseURL:   getEnv("PRICE_API_BASE_URL", ""),
		PriceAPIToken:     getEnv("PRICE_API_TOKEN", ""),
		PriceAPIRateRPS:   getEnvInt("PRICE_API_RATE_RPS", 5),
		PriceAPITimeoutMs: getEnvInt("PRICE_API_TIMEOUT_MS", 30000),

		IMAPHost:     getEnv("IMAP_HOST", ""),
		IMAPPort:     getEnvInt("IMAP_PORT", 993),
		IMAPSecure:   getEnvBool("IMAP_SECURE", true),
		IMAPUser:     getEnv("IMAP_USER", ""),
		IMAPPassword: getEnv("IMAP_PASSWORD", ""),
		IMAPMarkSeen: getEnvBool("IMAP_MARK_SEEN", true),

		ReportListenerLabel:       getEnv("REPORT_LISTENER_LABEL", "INBOX"),
		ReportListenerIntervalSec: getEnvInt("REPORT_LISTENER_INTERVAL_SEC", 60),
		ReportListenerFetchMax:    getEnvInt("REPORT_LISTENER_FETCH_MAX", 20),
	}

	return cfg, nil
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
