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
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Chunking ChunkingConfig
	Vector   VectorConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	ChatTurnTopic      string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	Groq string
	Jina string
}

type AIConfig struct {
	EmbeddingProvider string // "ollama" or "jina"
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama" or "groq"
	LLMModel          string
}

type ChunkingConfig struct {
	ChunkSize    int
	ChunkOverlap int
	MinChunkSize int
}

type VectorConfig struct {
	Backend    string // "qdrant" or "pgvector"
	QdrantURL  string
	QdrantKey  string
	Collection string
	Dimension  int
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
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ChatTurnTopic:      getEnv("CHAT_TURN_TOPIC_NAME", "CHAT_TURN_RECORDED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "RAG Assessment"),
		},
		Keys: APIKeys{
			Groq: getEnv("GROQ_API_KEY", ""),
			Jina: getEnv("JINA_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
		Chunking: ChunkingConfig{
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 500),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 50),
			MinChunkSize: getEnvAsInt("MIN_CHUNK_SIZE", 100),
		},
		Vector: VectorConfig{
			Backend:    getEnv("VECTOR_BACKEND", "qdrant"),
			QdrantURL:  getEnv("QDRANT_URL", "http://localhost:6333"),
			QdrantKey:  getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "documents"),
			Dimension:  getEnvAsInt("EMBEDDING_DIMENSION", 768),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
