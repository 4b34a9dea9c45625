package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/model"
	"metro-chatbot-be/pkg/dialog"
)

type ChatHistoryMapper struct{}

func NewChatHistoryMapper() *ChatHistoryMapper {
	return &ChatHistoryMapper{}
}

func (m *ChatHistoryMapper) ToEntity(h *model.ChatHistory) (*entity.ChatHistory, error) {
	if h == nil {
		return nil, nil
	}
	var conversation []dialog.HistoryTurn
	if len(h.Conversation) > 0 {
		if err := json.Unmarshal(h.Conversation, &conversation); err != nil {
			return nil, err
		}
	}
	return &entity.ChatHistory{
		Id:           h.Id,
		UserEmail:    h.UserEmail,
		Conversation: conversation,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}, nil
}

func (m *ChatHistoryMapper) ToModel(h *entity.ChatHistory) (*model.ChatHistory, error) {
	if h == nil {
		return nil, nil
	}
	conversation, err := json.Marshal(h.Conversation)
	if err != nil {
		return nil, err
	}
	return &model.ChatHistory{
		Id:           h.Id,
		UserEmail:    h.UserEmail,
		Conversation: datatypes.JSON(conversation),
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}, nil
}
