package dto

import (
	"time"

	"metro-chatbot-be/pkg/dialog"
)

// ChatRequest carries the session state with the request. The server is
// stateless for REST turns; the client echoes the returned session back on
// the next call.
type ChatRequest struct {
	Message      string               `json:"user_message" validate:"required"`
	SessionState *dialog.Session      `json:"session_state"`
	UserProfile  *dialog.Identity     `json:"user_profile"`
	History      []dialog.HistoryTurn `json:"conversation_history"`
}

type ChatResponse struct {
	BotMessage   string                 `json:"bot_message"`
	Recommends   dialog.Recommendations `json:"recommends"`
	NextStep     []string               `json:"next_step"`
	SessionState *dialog.Session        `json:"session_state"`
	Debug        ChatDebug              `json:"debug"`
}

// ChatDebug mirrors the dialogue state back to the client for tracing.
type ChatDebug struct {
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatHistoryTurnResponse struct {
	User string    `json:"user"`
	Bot  string    `json:"bot"`
	Time time.Time `json:"time"`
}

type ChatHistoryResponse struct {
	UserEmail    string                    `json:"user_email"`
	Conversation []ChatHistoryTurnResponse `json:"conversation"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}
