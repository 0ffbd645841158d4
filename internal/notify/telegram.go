package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender pushes reminders as Telegram messages to a fixed chat.
type TelegramSender struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	log.Printf("[info] reminder bot authorized on account %s", api.Self.UserName)
	return &TelegramSender{api: api, chatID: chatID}, nil
}

func (s *TelegramSender) Send(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := s.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// LogSender writes reminders to the process log. Used when no Telegram token
// is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, text string) error {
	log.Printf("[info] reminder: %s", text)
	return nil
}
