// Package telegram is a thin Telegram front end for the Glucare chat
// pipeline. It keeps no per-user state: every message is answered
// independently, same as the HTTP API.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/glucoin/glucoin-ai/internal/config"
	"github.com/glucoin/glucoin-ai/internal/entity"
)

const welcomeMessage = `👋 Halo! Saya *Glucare*, asisten AI khusus diabetes mellitus.

Tanyakan apa saja seputar diabetes: gejala, pengobatan, diet, pemeriksaan gula darah, dan lainnya.

Perintah:
/topics - daftar topik yang didukung
/search <kata kunci> - cari informasi terbaru dari web
/help - bantuan`

const helpMessage = `🤖 *Cara menggunakan bot ini:*

Kirim pertanyaan seputar diabetes sebagai pesan biasa, dan saya akan menjawab.

/start - pesan pembuka
/topics - daftar topik yang didukung
/search <kata kunci> - cari informasi terbaru dari web
/help - bantuan ini`

const genericError = "⚠️ Maaf, terjadi kesalahan. Silakan coba lagi."

// ChatUsecase answers a single message.
type ChatUsecase interface {
	Chat(ctx context.Context, req *entity.ChatRequest) (*entity.ChatResponse, error)
	Topics(ctx context.Context) *entity.TopicsResponse
}

// SearchAgent decides when a message warrants web enrichment and runs
// direct searches for the /search command.
type SearchAgent interface {
	ShouldSearch(message string) bool
	Lookup(ctx context.Context, message string, force bool) ([]entity.SearchResult, error)
}

// Bot represents the Telegram bot
type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      *config.TelegramConfig
	chatUC   ChatUsecase
	agent    SearchAgent
	logger   *zap.Logger
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewBot creates and authorizes the bot.
func NewBot(
	cfg *config.TelegramConfig,
	chatUC ChatUsecase,
	agent SearchAgent,
	logger *zap.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	api.Debug = false

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	return &Bot{
		api:      api,
		cfg:      cfg,
		chatUC:   chatUC,
		agent:    agent,
		logger:   logger,
		stopChan: make(chan struct{}),
	}, nil
}

// Start starts the update loop.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout

	updates := b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)
	go b.processUpdates(ctx, updates)

	b.logger.Info("telegram bot started successfully")
	return nil
}

// Stop stops the bot gracefully with timeout.
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

func (b *Bot) processUpdates(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update := <-updates:
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdate(ctx, u)
			}(update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			ctxzap.Error(ctx, "panic in update handler", zap.Any("panic", r))
		}
	}()

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	message := update.Message
	ctx = ctxzap.ToContext(ctx, b.logger.With(
		zap.Int64("user_id", message.From.ID),
		zap.Int64("chat_id", message.Chat.ID),
	))

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	b.handleChatMessage(ctx, message)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	command := message.Command()

	ctxzap.Info(ctx, "command received", zap.String("command", command))

	switch command {
	case "start":
		b.sendMarkdown(ctx, message.Chat.ID, welcomeMessage)
	case "help":
		b.sendMarkdown(ctx, message.Chat.ID, helpMessage)
	case "topics":
		b.handleTopicsCommand(ctx, message)
	case "search":
		b.handleSearchCommand(ctx, message)
	default:
		b.sendMarkdown(ctx, message.Chat.ID, "❌ Perintah tidak dikenal. Gunakan /help")
	}
}

func (b *Bot) handleTopicsCommand(ctx context.Context, message *tgbotapi.Message) {
	topics := b.chatUC.Topics(ctx)

	var sb strings.Builder
	sb.WriteString("📚 *Topik yang didukung:*\n")
	for _, t := range topics.SupportedTopics {
		fmt.Fprintf(&sb, "• %s\n", t)
	}
	sb.WriteString("\n💡 *Contoh pertanyaan:*\n")
	for _, q := range topics.SampleQuestions {
		fmt.Fprintf(&sb, "• %s\n", q)
	}

	b.sendMarkdown(ctx, message.Chat.ID, sb.String())
}

func (b *Bot) handleSearchCommand(ctx context.Context, message *tgbotapi.Message) {
	query := strings.TrimSpace(message.CommandArguments())
	if query == "" {
		b.sendMarkdown(ctx, message.Chat.ID, "Gunakan: /search <kata kunci>")
		return
	}

	results, err := b.agent.Lookup(ctx, query, true)
	if err != nil {
		ctxzap.Error(ctx, "search command failed", zap.Error(err))
		b.sendMarkdown(ctx, message.Chat.ID, "⚠️ Pencarian sedang tidak tersedia. Silakan coba lagi.")
		return
	}

	if len(results) == 0 {
		b.sendMarkdown(ctx, message.Chat.ID, "Tidak ditemukan hasil untuk pencarian tersebut.")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 *Hasil pencarian untuk:* %s\n", query)
	for _, r := range results {
		fmt.Fprintf(&sb, "\n📌 *%s*\n%s\n🔗 %s\n", r.Title, r.Snippet, r.URL)
	}

	b.sendMarkdown(ctx, message.Chat.ID, sb.String())
}

func (b *Bot) handleChatMessage(ctx context.Context, message *tgbotapi.Message) {
	req := &entity.ChatRequest{
		Message:      message.Text,
		UseWebsearch: b.agent.ShouldSearch(message.Text),
	}

	typing := tgbotapi.NewChatAction(message.Chat.ID, tgbotapi.ChatTyping)
	b.api.Request(typing)

	resp, err := b.chatUC.Chat(ctx, req)
	if err != nil {
		ctxzap.Error(ctx, "chat usecase failed", zap.Error(err))
		b.sendMarkdown(ctx, message.Chat.ID, genericError)
		return
	}

	reply := resp.Response
	if len(resp.Sources) > 0 {
		var sb strings.Builder
		sb.WriteString(reply)
		sb.WriteString("\n\n📖 *Sumber:*\n")
		for _, s := range resp.Sources {
			fmt.Fprintf(&sb, "• [%s](%s)\n", s.Title, s.URL)
		}
		reply = sb.String()
	}

	ctxzap.Info(ctx, "chat answered",
		zap.Bool("websearch_used", resp.WebsearchUsed),
		zap.Int64("response_time_ms", resp.ResponseTimeMs),
	)

	b.sendMarkdown(ctx, message.Chat.ID, reply)
}

func (b *Bot) sendMarkdown(ctx context.Context, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		ctxzap.Error(ctx, "failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}
