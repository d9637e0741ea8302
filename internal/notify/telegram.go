// Package notify pushes escalation alerts to the warden's Telegram chat.
// Notifications are best-effort: a failed send is logged and never blocks
// the complaint pipeline.
package notify

import (
	"fmt"
	"log"

	"hostelhelper/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends escalation alerts to a fixed admin chat.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier authorizes against the Bot API. Returns (nil, nil)
// when token or chat id are unset so the caller can run without alerts.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)
	return &TelegramNotifier{BotAPI: bot, ChatID: chatID}, nil
}

// EscalationCreated alerts the admin chat about a freshly escalated
// complaint.
func (n *TelegramNotifier) EscalationCreated(e *models.Escalation) {
	if n == nil || n.BotAPI == nil {
		return
	}

	text := fmt.Sprintf(
		"🚨 *New escalation %s*\nComplaint: %s\nStudent: %s\n\n%s",
		e.ID, e.ComplaintID, e.StudentID, e.Description)
	if e.SuggestedSolution != "" {
		text += "\n\n💡 Suggested: " + e.SuggestedSolution
	}

	msg := tgbotapi.NewMessage(n.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("Error sending escalation alert for %s: %v", e.ID, err)
	}
}
