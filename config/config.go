package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	Threshold     int    // порог бинаризации по умолчанию
	MinArea       int    // минимальная площадь объекта, 0 — без фильтра
	LumaOrder     string // auto, rgb или bgr
	Backend       string // native или gocv
	MaxCount      int    // знаменатель в подписи "Spermatozoa: N/500"
	ShowAreas     bool   // показывать статистику площадей
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Threshold:     getEnvAsInt("THRESHOLD", 120),
		MinArea:       getEnvAsInt("MIN_AREA", 0),
		LumaOrder:     getEnv("LUMA_ORDER", "auto"),
		Backend:       getEnv("VISION_BACKEND", "native"),
		MaxCount:      getEnvAsInt("MAX_COUNT", 500),
		ShowAreas:     getEnvAsBool("SHOW_AREAS", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет диапазоны значений.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("THRESHOLD must be between 0 and 255, got %d", c.Threshold)
	}
	if c.MinArea < 0 {
		return fmt.Errorf("MIN_AREA must not be negative, got %d", c.MinArea)
	}
	if c.MaxCount <= 0 {
		return fmt.Errorf("MAX_COUNT must be positive, got %d", c.MaxCount)
	}
	switch c.LumaOrder {
	case "auto", "rgb", "bgr":
	default:
		return fmt.Errorf("LUMA_ORDER must be auto, rgb or bgr, got %q", c.LumaOrder)
	}
	switch c.Backend {
	case "native", "gocv":
	default:
		return fmt.Errorf("VISION_BACKEND must be native or gocv, got %q", c.Backend)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
