package models

import "time"

// Chat message authors.
const (
	MessageTypeUser = "user"
	MessageTypeBot  = "bot"
)

// ChatMessage is a single turn in the assistant conversation. Messages are
// wire-level only; the durable records are complaints and escalations.
type ChatMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// History roles as the triage service expects them.
const (
	RoleUser      = "user"
	RoleAssistant = "model"
)

// HistoryEntry is a prior conversation turn handed to the triage service
// for context.
type HistoryEntry struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}
