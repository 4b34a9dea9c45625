package entity

import (
	"time"

	"github.com/google/uuid"

	"metro-chatbot-be/pkg/dialog"
)

// ChatHistory is one user's persisted conversation. The conversation is a
// full snapshot, rewritten on every appended turn.
type ChatHistory struct {
	Id           uuid.UUID
	UserEmail    string
	Conversation []dialog.HistoryTurn
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
