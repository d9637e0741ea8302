package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything read from the environment. Load it once in main
// (after godotenv) and pass it down; nothing else touches os.Getenv.
type Config struct {
	AppPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string

	// GeminiAPIKey empty means the deterministic classifier handles
	// everything and the triage adapter is never called.
	GeminiAPIKey string
	GeminiModel  string

	// TelegramBotToken/TelegramAdminChatID unset disables escalation
	// notifications.
	TelegramBotToken    string
	TelegramAdminChatID int64
}

// New builds a Config from the environment, applying defaults for anything
// optional. JWT_SECRET is the only hard requirement.
func New() (*Config, error) {
	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8080"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBUser:           getEnv("DB_USER", "user"),
		DBPassword:       getEnv("DB_PASSWORD", "password"),
		DBName:           getEnv("DB_NAME", "hostelhelperdb"),
		DBPort:           getEnv("DB_PORT", "5432"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", DefaultGeminiModel),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if raw := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID is not a number: %w", err)
		}
		cfg.TelegramAdminChatID = chatID
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN renders the PostgreSQL connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
