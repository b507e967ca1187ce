// Package builder wires configuration, connectors, use cases and
// routers into runnable applications.
package builder

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/api"
	chatapi "github.com/glucoin/glucoin-ai/internal/api/chat"
	detectapi "github.com/glucoin/glucoin-ai/internal/api/detect"
	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/integration/common"
	"github.com/glucoin/glucoin-ai/internal/integration/llm"
	"github.com/glucoin/glucoin-ai/internal/integration/model"
	"github.com/glucoin/glucoin-ai/internal/integration/search"
	"github.com/glucoin/glucoin-ai/internal/pkg/formatter"
	"github.com/glucoin/glucoin-ai/internal/pkg/logger"
	"github.com/glucoin/glucoin-ai/internal/pkg/validator"
	"github.com/glucoin/glucoin-ai/internal/telegram"
	chatuc "github.com/glucoin/glucoin-ai/internal/usecase/chat"
	detectuc "github.com/glucoin/glucoin-ai/internal/usecase/detect"
)

// BuildDetection builds the standalone detection service.
func BuildDetection() (*App, error) {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}

	detectHandler, status := buildDetectionComponents(cfg, log)

	router := api.SetupDetectionRouter(detectHandler, status, log)
	log.Info("Detection router configured")

	return newApp(cfg.DetectionAddr, router, log), nil
}

// BuildChatbot builds the standalone chatbot service.
func BuildChatbot() (*App, error) {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}

	chatHandler, status := buildChatbotComponents(cfg, log)

	router := api.SetupChatbotRouter(chatHandler, status, log)
	log.Info("Chatbot router configured")

	return newApp(cfg.ChatbotAddr, router, log), nil
}

// BuildCombined builds the single binary serving both services under
// path prefixes.
func BuildCombined() (*App, error) {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}

	detectHandler, detectionStatus := buildDetectionComponents(cfg, log)
	chatHandler, chatbotStatus := buildChatbotComponents(cfg, log)

	router := api.SetupCombinedRouter(detectHandler, chatHandler, detectionStatus, chatbotStatus, log)
	log.Info("Combined router configured")

	return newApp(cfg.CombinedAddr, router, log), nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (*telegram.Bot, *zap.Logger, error) {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return nil, nil, err
	}

	if cfg.TelegramCfg.BotToken == "" {
		return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	chatUC, searcher := buildChatUsecase(cfg, log)

	bot, err := telegram.NewBot(&cfg.TelegramCfg, chatUC, search.NewAgent(searcher), log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	log.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, log, nil
}

func loadConfigAndLogger() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.Bool("mocks_enabled", cfg.EnableMocks),
	)

	return cfg, log, nil
}

func buildDetectionComponents(cfg *config.Config, log *zap.Logger) (*detectapi.Handler, api.DetectionStatus) {
	v := validator.NewValidator(cfg.FileUploadCfg)

	var modelConnector detectuc.ModelConnector
	if cfg.EnableMocks {
		log.Info("Using mock inference connector")
		modelConnector = model.NewMockConnector(log)
	} else {
		modelConnector = model.NewConnector(cfg.ModelCfg, log)
	}

	detectUC := detectuc.NewUsecase(modelConnector, v, cfg.ModelCfg.Threshold, log)
	handler := detectapi.NewHandler(detectUC, formatter.NewFactory(), v.MaxUploadSize())

	status := api.DetectionStatus{
		ModelAvailable: cfg.EnableMocks || cfg.ModelCfg.Url != "",
		Threshold:      cfg.ModelCfg.Threshold,
	}

	return handler, status
}

func buildChatbotComponents(cfg *config.Config, log *zap.Logger) (*chatapi.Handler, api.ChatbotStatus) {
	chatUC, _ := buildChatUsecase(cfg, log)
	handler := chatapi.NewHandler(chatUC)

	var modelName string
	if cfg.EnableMocks {
		modelName = "mock-llm"
	} else {
		modelName = cfg.LLMCfg.Model
	}

	status := api.ChatbotStatus{
		LLMAvailable:       cfg.EnableMocks || cfg.LLMCfg.Url != "",
		WebsearchAvailable: true,
		Model:              modelName,
	}

	return handler, status
}

func buildChatUsecase(cfg *config.Config, log *zap.Logger) (*chatuc.ChatUsecase, *search.Searcher) {
	v := validator.NewValidator(cfg.FileUploadCfg)
	searchConn := common.NewSearchConnector(cfg.SearchCfg, log)

	var llmConnector chatuc.LLMConnector
	var engines []search.Engine

	if cfg.EnableMocks {
		log.Info("Using mock connectors for external services")
		llmConnector = llm.NewMockConnector(log)
		engines = []search.Engine{search.NewMockEngine()}
	} else {
		llmConnector = llm.NewConnector(cfg.LLMCfg, log)
		engines = []search.Engine{
			search.NewDuckDuckGoEngine(searchConn),
			search.NewGoogleEngine(searchConn),
		}
	}

	searcher := search.NewSearcher(cfg.SearchCfg, engines, searchConn, log)

	return chatuc.NewUsecase(llmConnector, searcher, v, cfg.Topics, log), searcher
}

func newApp(addr string, router http.Handler, log *zap.Logger) *App {
	return &App{
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: log,
	}
}
