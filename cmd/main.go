package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sperm-analyzer/config"
	telegram "sperm-analyzer/internal/api"
	"sperm-analyzer/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_TOKEN is required")
	}

	// Собираем сервисы приложения
	appContainer, err := container.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		log.Fatalf("Bot error: %v", err)
	}
}
