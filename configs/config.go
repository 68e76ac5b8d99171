package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	CompanyID     string
	DBSource      string
	FirebaseDBURL string
	CacheTTL      time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	ttl := 15 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			ttl = d
		} else {
			log.Printf("CACHE_TTL inválido (%q), usando %s", v, ttl)
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		CompanyID:     getEnv("COMPANY_ID", "universo_acai"),
		DBSource:      getEnv("DB_SOURCE", "mateus-burger.db"),
		FirebaseDBURL: getEnv("FIREBASE_DB_URL", "https://flexorder-default-rtdb.firebaseio.com"),
		CacheTTL:      ttl,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
