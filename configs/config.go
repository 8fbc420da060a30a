package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBSource       string
	UploadDir      string
	SessionBackend string // "memory" or "redis"
	RedisAddr      string
	RedisPassword  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:           getEnv("PORT", "8000"),
		DBSource:       getEnv("DB_SOURCE", "restaurant.db"),
		UploadDir:      getEnv("UPLOAD_DIR", "static/images"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
