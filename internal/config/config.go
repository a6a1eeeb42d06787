package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Keys       APIKeys
	Ai         AIConfig
	Enrichment EnrichmentConfig
	Tracing    TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string // empty disables domain event publishing
	RedisURL           string // empty disables cluster fan-out and the shared run guard
	JwtSecret          string
}

type DatabaseConfig struct {
	Driver              string // "postgres" or "sqlite"
	Connection          string // postgres DSN
	SQLitePath          string
	VectorSearchEnabled bool
}

type APIKeys struct {
	GoogleGemini string
	Jina         string
}

type AIConfig struct {
	EmbeddingProvider  string // "gemini", "ollama" or "jina"
	EmbeddingModel     string
	EmbeddingDimension int
	GeminiBaseURL      string
	JinaBaseURL        string
	OllamaBaseURL      string
	OllamaModel        string
	LLMProvider        string // "gemini" or "ollama"
	LLMModel           string
}

type EnrichmentConfig struct {
	Topic       string
	NeighborK   int
	RecentDays  int
	PerDayLimit int
	CallTimeout time.Duration
	RunTimeout  time.Duration
	GuardTTL    time.Duration
	PersonaTTL  time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// Load reads .env (when present) and the process environment once at startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Driver:              getEnv("DB_DRIVER", "postgres"),
			Connection:          getEnv("DB_CONNECTION_STRING", ""),
			SQLitePath:          getEnv("SQLITE_PATH", "journal.db"),
			VectorSearchEnabled: getEnvAsBool("VECTOR_SEARCH_ENABLED", true),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", getEnv("GOOGLE_GEMINI_API_KEY", "")),
			Jina:         getEnv("JINA_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			EmbeddingDimension: getEnvAsInt("EMBEDDING_DIMENSION", 768),
			GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			JinaBaseURL:        getEnv("JINA_BASE_URL", ""),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:        getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:        getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:           getEnv("LLM_MODEL", getEnv("GEMINI_MODEL", "gemini-1.5-flash")),
		},
		Enrichment: EnrichmentConfig{
			Topic:       getEnv("ENRICH_NOTE_TOPIC_NAME", "ENRICH_NOTE"),
			NeighborK:   getEnvAsInt("ENRICHMENT_NEIGHBOR_K", 5),
			RecentDays:  getEnvAsInt("ENRICHMENT_RECENT_DAYS", 5),
			PerDayLimit: getEnvAsInt("ENRICHMENT_PER_DAY_LIMIT", 20),
			CallTimeout: getEnvAsDuration("ENRICHMENT_CALL_TIMEOUT", 30*time.Second),
			RunTimeout:  getEnvAsDuration("ENRICHMENT_RUN_TIMEOUT", 2*time.Minute),
			GuardTTL:    getEnvAsDuration("ENRICHMENT_GUARD_TTL", 5*time.Minute),
			PersonaTTL:  getEnvAsDuration("PERSONA_CACHE_TTL", 5*time.Minute),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "ai-journal-backend"),
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

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
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

// getEnvAsDuration accepts Go durations ("45s") or plain seconds ("45").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
