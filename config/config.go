package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresURL  string
	MongoURL     string
	DBType       string
	Port         string
	AgentURL     string
	AgentTimeout int // seconds
	SessionFile  string
	PDFSavePath  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		MongoURL:     os.Getenv("MONGO_URL"),
		DBType:       os.Getenv("DB_TYPE"),
		Port:         os.Getenv("PORT"),
		AgentURL:     os.Getenv("AGENT_URL"),
		AgentTimeout: intEnv("AGENT_TIMEOUT_SECONDS", 30),
		SessionFile:  os.Getenv("SESSION_FILE"),
		PDFSavePath:  os.Getenv("PDF_SAVE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AgentURL == "" {
		cfg.AgentURL = "http://localhost:5000"
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = "files/sessions.json"
	}
	if cfg.PDFSavePath == "" {
		cfg.PDFSavePath = "./pdfs"
	}
	return cfg
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return n
}
