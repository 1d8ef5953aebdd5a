package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURL      string
	DBName        string
	GeminiAPIKey  string
	HTTPPort      string
	UploadDir     string
	CORSOrigins   []string
	LogLevel      string
	ChatModel     string
	AnalysisModel string
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		logrus.Info("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		MongoURL:      getEnv("MONGO_URL", ""),
		DBName:        getEnv("DB_NAME", "chatbot"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		CORSOrigins:   splitOrigins(getEnv("CORS_ORIGINS", "*")),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		ChatModel:     getEnv("CHAT_MODEL", ""),
		AnalysisModel: getEnv("ANALYSIS_MODEL", ""),
	}

	if AppConfig.MongoURL == "" {
		logrus.Fatal("MONGO_URL environment variable is required")
	}

	if AppConfig.GeminiAPIKey == "" {
		logrus.Fatal("GEMINI_API_KEY environment variable is required")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
