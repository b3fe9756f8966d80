package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv memuat variabel lingkungan dari file .env jika ada
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: file .env tidak bisa dimuat, memakai variabel lingkungan yang ada: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault mengambil variabel lingkungan dengan nilai cadangan
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
