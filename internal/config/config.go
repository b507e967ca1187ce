package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/glucoin/glucoin-ai/internal/pkg/retry"
)

// Config holds the configuration shared by all binaries. Each binary
// reads its own listen address; everything else is common.
type Config struct {
	// Server configuration
	DetectionAddr string `env:"DETECTION_ADDR" envDefault:":8001"`
	ChatbotAddr   string `env:"CHATBOT_ADDR" envDefault:":8002"`
	CombinedAddr  string `env:"COMBINED_ADDR" envDefault:":8000"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// External service configurations
	ModelCfg  ModelConnectorConfig `envPrefix:"MODEL_"`
	LLMCfg    LLMConnectorConfig   `envPrefix:"LLM_"`
	SearchCfg SearchConfig         `envPrefix:"SEARCH_"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Telegram bot configuration (only read by cmd/telegram-bot)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Topic catalog served by GET /topics (loaded from JSON file)
	Topics TopicCatalog

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// ModelConnectorConfig configures the external inference service that
// scores tongue/nail images.
type ModelConnectorConfig struct {
	HTTPClientConfig
	PredictEndpoint string               `env:"PREDICT_ENDPOINT" envDefault:"/predict"`
	Threshold       float64              `env:"THRESHOLD" envDefault:"0.60"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// LLMConnectorConfig configures the chat-completions provider.
type LLMConnectorConfig struct {
	HTTPClientConfig
	ChatEndpoint string  `env:"CHAT_ENDPOINT" envDefault:"/openai/v1/chat/completions"`
	Model        string  `env:"MODEL" envDefault:"llama-3.3-70b-versatile"`
	MaxTokens    int     `env:"MAX_TOKENS" envDefault:"1000"`
	Temperature  float64 `env:"TEMPERATURE" envDefault:"0.7"`
}

// SearchConfig configures the web search engines and their cache.
type SearchConfig struct {
	MaxResults   int                  `env:"MAX_RESULTS" envDefault:"3"`
	Timeout      time.Duration        `env:"TIMEOUT" envDefault:"10s"`
	CacheTTL     time.Duration        `env:"CACHE_TTL" envDefault:"5m"`
	FetchContent bool                 `env:"FETCH_CONTENT" envDefault:"true"`
	UserAgent    string               `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
	Retry        pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// TelegramConfig holds Telegram bot configuration.
type TelegramConfig struct {
	BotToken        string `env:"BOT_TOKEN"`
	UpdateTimeout   int    `env:"UPDATE_TIMEOUT" envDefault:"30"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"` // seconds
}

// HTTPClientConfig is the shared outbound HTTP client block.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"20s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds image upload limits.
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE" envDefault:"5242880"`    // 5 MiB per image
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"16777216"` // 16 MiB per request
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadTopicCatalog(cfg); err != nil {
		return nil, fmt.Errorf("load topic catalog: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.ModelCfg.Threshold < 0 || cfg.ModelCfg.Threshold > 1 {
		return fmt.Errorf("MODEL_THRESHOLD must be in [0,1], got %v", cfg.ModelCfg.Threshold)
	}

	if cfg.SearchCfg.MaxResults < 1 || cfg.SearchCfg.MaxResults > 10 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be between 1 and 10, got %d", cfg.SearchCfg.MaxResults)
	}

	if cfg.LLMCfg.MaxTokens < 1 || cfg.LLMCfg.MaxTokens > 8192 {
		return fmt.Errorf("LLM_MAX_TOKENS must be between 1 and 8192, got %d", cfg.LLMCfg.MaxTokens)
	}

	if cfg.FileUploadCfg.MaxFileSize < 1 || cfg.FileUploadCfg.MaxFileSize > cfg.FileUploadCfg.MaxUploadSize {
		return fmt.Errorf("FILE_UPLOAD_MAX_FILE_SIZE must be between 1 and FILE_UPLOAD_MAX_UPLOAD_SIZE(%d), got %d",
			cfg.FileUploadCfg.MaxUploadSize, cfg.FileUploadCfg.MaxFileSize)
	}

	return nil
}

// TopicCatalog is the static content behind GET /topics.
type TopicCatalog struct {
	SupportedTopics []string `json:"supported_topics"`
	SampleQuestions []string `json:"sample_questions"`
}

var defaultTopicCatalog = TopicCatalog{
	SupportedTopics: []string{
		"Diabetes Tipe 1",
		"Diabetes Tipe 2",
		"Diabetes Gestasional",
		"Gejala dan diagnosis diabetes",
		"Pengobatan dan manajemen diabetes",
		"Diet dan nutrisi untuk diabetes",
		"Olahraga dan gaya hidup sehat",
		"Komplikasi diabetes",
		"Pemeriksaan gula darah (GDP, GDS, HbA1c)",
		"Insulin dan obat diabetes",
	},
	SampleQuestions: []string{
		"Apa gejala diabetes?",
		"Berapa kadar gula darah normal?",
		"Apa perbedaan diabetes tipe 1 dan tipe 2?",
		"Makanan apa yang baik untuk diabetes?",
		"Bagaimana cara mencegah diabetes?",
	},
}

func loadTopicCatalog(cfg *Config) error {
	catalogPath := filepath.Join("internal", "config", "topics.json")

	if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
		fmt.Printf("Warning: topic catalog not found at %s, using built-in defaults\n", catalogPath)
		cfg.Topics = defaultTopicCatalog
		return nil
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("read topic catalog: %w", err)
	}

	var catalog TopicCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("parse topic catalog JSON: %w", err)
	}

	if len(catalog.SupportedTopics) == 0 || len(catalog.SampleQuestions) == 0 {
		return fmt.Errorf("topic catalog is incomplete: %s", catalogPath)
	}

	cfg.Topics = catalog
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
