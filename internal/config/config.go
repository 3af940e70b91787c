package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionSecret      string
	SessionStore       string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection    string
	CatalogSource string // "static" or "database"
}

type APIKeys struct {
	GoogleGemini string
	EventTopic   string // In-process site event topic
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string // e.g. "gemini-3-flash-preview", "llama3"
	OllamaBaseURL string
}

type PaymentConfig struct {
	Gateway            string // "payfast" or "midtrans"
	Sandbox            bool
	PayfastMerchantID  string
	PayfastMerchantKey string
	MidtransServerKey  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			SessionSecret:      getEnv("SESSION_SECRET", ""),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection:    getEnv("DB_CONNECTION_STRING", ""),
			CatalogSource: getEnv("CATALOG_SOURCE", "static"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EventTopic:   getEnv("SITE_EVENT_TOPIC_NAME", "SITE_EVENTS"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-3-flash-preview"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Payment: PaymentConfig{
			Gateway:            getEnv("PAYMENT_GATEWAY", "payfast"),
			Sandbox:            getEnvAsBool("PAYMENT_SANDBOX", true),
			PayfastMerchantID:  getEnv("PAYFAST_MERCHANT_ID", ""),
			PayfastMerchantKey: getEnv("PAYFAST_MERCHANT_KEY", ""),
			MidtransServerKey:  getEnv("MIDTRANS_SERVER_KEY", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
