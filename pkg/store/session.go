package store

import (
	"time"

	"metro-chatbot-be/pkg/dialog"
)

// ChatSession is the server-held conversation state for transports that
// cannot replay the session themselves (websocket clients). REST callers
// carry the dialogue session in the request body instead.
type ChatSession struct {
	ID        string               `json:"id"`
	Dialogue  *dialog.Session      `json:"dialogue"`
	History   []dialog.HistoryTurn `json:"history"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// SessionStore holds active chat sessions. Implementations expire entries
// on their own schedule; a miss simply starts a fresh conversation.
type SessionStore interface {
	Save(session *ChatSession)
	Get(sessionID string) (*ChatSession, bool)
	Delete(sessionID string)
}

// NewChatSession returns a fresh server-held conversation.
func NewChatSession(id string) *ChatSession {
	return &ChatSession{
		ID:        id,
		Dialogue:  dialog.NewSession(),
		UpdatedAt: time.Now().UTC(),
	}
}
