package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every externally injected setting. There is no package-level
// state; main builds one of these and passes it down.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	AdminAPIKey string
}

// Load reads .env (when present) and builds the Config from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port:        GetEnv("PORT", "3000"),
		DBHost:      GetEnv("DB_HOST", "localhost"),
		DBPort:      GetEnv("DB_PORT", "5432"),
		DBUser:      GetEnv("DB_USER", "postgres"),
		DBPassword:  GetEnv("DB_PASSWORD", "postgres"),
		DBName:      GetEnv("DB_NAME", "disco-db"),
		DBSSLMode:   GetEnv("DB_SSLMODE", "disable"),
		AdminAPIKey: GetEnv("ADMIN_API_KEY"),
	}

	if cfg.AdminAPIKey == "" {
		log.Println("❌ ADMIN_API_KEY is not set — admin routes will reject every request")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
