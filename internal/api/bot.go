package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sperm-analyzer/internal/container"
	"sperm-analyzer/internal/domain/entity"
	"sperm-analyzer/internal/infrastructure/imageio"
)

const (
	msgStart = `👋 Hello! I count spermatozoa on microscopy images.

📸 Send a photo or an image file and I will outline the detected objects.

📋 Commands:
/analyze — analyze an image
/threshold N — set the binarization threshold (0-255)
/help — help
/cancel — cancel the current operation`

	msgHelp = `ℹ️ How it works:

1️⃣ The image is converted to grayscale
2️⃣ Pixels darker than the threshold become objects
3️⃣ Every outer contour is counted as one spermatozoon

💡 Tips:
• Send the image as a file to avoid compression
• Every speck darker than the threshold is counted
• Use /threshold to tune the cut-off, /threshold reset restores the default`

	msgAwaitingImage   = "📸 Send a microscopy image to analyze."
	msgCancelled       = "❌ Operation cancelled. Send /analyze to start again."
	msgSendImage       = "📸 Please send a microscopy image."
	msgUnknownCommand  = "❓ Unknown command. Use /help."
	msgProcessing      = "⏳ Analyzing image..."
	msgNotImage        = "⚠️ This file is not an image."
	msgInvalidImage    = "⚠️ Could not read the image. Please send a PNG, JPEG, BMP, GIF or WebP file."
	msgProcessingError = "⚠️ Failed to analyze the image. Please try again."
	msgThresholdUsage  = "Usage: /threshold N (0-255) or /threshold reset. Current: %d"
	msgThresholdSet    = "✅ Threshold set to %d."
)

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api: api,
		app: app,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.app.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleImage(ctx, msg, user, photo.FileID)
		return
	}

	// Снимок, отправленный файлом, приходит без сжатия
	if msg.Document != nil {
		if !isImageDocument(msg.Document) {
			b.sendMessage(msg.Chat.ID, msgNotImage)
			return
		}
		b.handleImage(ctx, msg, user, msg.Document.FileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendImage)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	users := b.app.UserService

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "analyze":
		if _, err := users.BeginAnalysis(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error saving user state: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgAwaitingImage)

	case "threshold":
		b.handleThreshold(ctx, msg, user)

	case "cancel":
		if _, err := users.Cancel(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error saving user state: %v", err)
		}
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handleThreshold меняет персональный порог пользователя
func (b *Bot) handleThreshold(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	current := b.app.UserService.ThresholdFor(user, b.app.AnalysisService.DefaultThreshold())

	threshold, reset, ok := parseThresholdArg(msg.CommandArguments())
	switch {
	case !ok:
		b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgThresholdUsage, current))
		return
	case reset:
		if _, err := b.app.UserService.ResetThreshold(ctx, user.ID, user.ChatID); err != nil {
			log.Printf("Error resetting threshold: %v", err)
		}
		threshold = b.app.AnalysisService.DefaultThreshold()
	default:
		if _, err := b.app.UserService.SetThreshold(ctx, user.ID, user.ChatID, threshold); err != nil {
			log.Printf("Error saving threshold: %v", err)
			b.sendMessage(msg.Chat.ID, msgProcessingError)
			return
		}
	}

	b.sendMessage(msg.Chat.ID, fmt.Sprintf(msgThresholdSet, threshold))
}

// handleImage скачивает снимок, анализирует и отправляет результат
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string) {
	// Устанавливаем состояние "обработка"
	b.setState(ctx, user, entity.StateProcessing)
	defer b.setState(ctx, user, entity.StateMainMenu)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(fileID)
	if err != nil {
		log.Printf("Error downloading image: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	threshold := b.app.UserService.ThresholdFor(user, b.app.AnalysisService.DefaultThreshold())
	out, err := b.app.AnalysisService.AnalyzeBytes(ctx, imageData, threshold)
	if err != nil {
		log.Printf("Error analyzing image (%d bytes): %v", len(imageData), err)
		if errors.Is(err, entity.ErrInvalidInput) {
			b.sendMessage(msg.Chat.ID, msgInvalidImage)
			return
		}
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "result.png", Bytes: out.Annotated})
	if out.Description != nil {
		photo.Caption = out.Description.Text
	}
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending result: %v", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.app.UserService.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		log.Printf("Error saving user state: %v", err)
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// parseThresholdArg разбирает аргумент /threshold.
func parseThresholdArg(arg string) (threshold int, reset bool, ok bool) {
	arg = strings.TrimSpace(arg)
	if strings.EqualFold(arg, "reset") {
		return 0, true, true
	}
	v, err := strconv.Atoi(arg)
	if err != nil || v < 0 || v > 255 {
		return 0, false, false
	}
	return v, false, true
}

// isImageDocument проверяет MIME-тип или расширение файла.
func isImageDocument(doc *tgbotapi.Document) bool {
	if strings.HasPrefix(doc.MimeType, "image/") {
		return true
	}
	return imageio.IsImageFile(doc.FileName)
}
