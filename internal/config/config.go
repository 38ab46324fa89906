package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	MediaDir       string
	LogFile        string
	WhatsAppNumber string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DBDSN:          getenv("DB_DSN", "yunix.db"), // sqlite file holding wishlist slots
		MediaDir:       getenv("MEDIA_DIR", "./web/media"),
		LogFile:        getenv("LOG_FILE", "./yunix.log"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "2348123456789"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
