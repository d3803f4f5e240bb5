package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	StoreBackend   string // memory | redis | mongo
	RedisAddr      string
	RedisNamespace string
	MongoURI       string
	MongoDB        string
	PaymentLatency time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		StoreBackend:   getenv("STORE_BACKEND", "memory"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisNamespace: getenv("REDIS_NAMESPACE", "dharmaverse"),
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getenv("MONGO_DB_NAME", "dharmaverse"),
		PaymentLatency: getduration("PAYMENT_LATENCY", 2*time.Second),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
