package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	OCR   OCRConfig
	Batch BatchConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract     string
	TesseractLang string
	DPI           int
	MinTextLen    int
	MaxPages      int
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Workers int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "por"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MinTextLen:    getEnvAsInt("OCR_MIN_TEXT_LEN", 400),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("BATCH_WORKERS", 5),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
