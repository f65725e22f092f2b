package notify

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hostelhub/backend/internal/models"
)

// TelegramSink forwards events to a fixed Telegram chat, typically the warden
// or maintenance group. Send failures are logged and dropped.
type TelegramSink struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramSink authorizes the bot and returns a sink posting to chatID.
func NewTelegramSink(token string, chatID int64) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Telegram notifications authorized on account %s", bot.Self.UserName)

	return &TelegramSink{BotAPI: bot, ChatID: chatID}, nil
}

func (s *TelegramSink) Notify(e models.Event) {
	msg := tgbotapi.NewMessage(s.ChatID, e.Message)
	if _, err := s.BotAPI.Send(msg); err != nil {
		log.Printf("WARNING: Failed to send Telegram notification: %v", err)
	}
}
