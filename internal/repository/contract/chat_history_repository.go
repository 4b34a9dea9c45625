package contract

import (
	"context"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"
)

type ChatHistoryRepository interface {
	// Upsert replaces the conversation snapshot keyed by user email,
	// creating the row on first write.
	Upsert(ctx context.Context, history *entity.ChatHistory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatHistory, error)
}
