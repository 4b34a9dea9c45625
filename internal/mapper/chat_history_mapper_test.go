package mapper

import (
	"testing"
	"time"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/pkg/dialog"

	"github.com/stretchr/testify/assert"
)

func TestChatHistoryMapperRoundTrip(t *testing.T) {
	m := NewChatHistoryMapper()

	when := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	original := &entity.ChatHistory{
		UserEmail: "jane@example.com",
		Conversation: []dialog.HistoryTurn{
			{User: "hello", Bot: "Hello there", Time: when},
			{User: "do you sell solar panels", Bot: "We do.", Time: when.Add(time.Minute)},
		},
	}

	model, err := m.ToModel(original)
	assert.NoError(t, err)
	assert.NotEmpty(t, model.Conversation)

	back, err := m.ToEntity(model)
	assert.NoError(t, err)
	assert.Equal(t, original.UserEmail, back.UserEmail)
	assert.Len(t, back.Conversation, 2)
	assert.Equal(t, "do you sell solar panels", back.Conversation[1].User)
	assert.True(t, back.Conversation[0].Time.Equal(when))
}

func TestChatHistoryMapperNil(t *testing.T) {
	m := NewChatHistoryMapper()

	e, err := m.ToEntity(nil)
	assert.NoError(t, err)
	assert.Nil(t, e)

	mo, err := m.ToModel(nil)
	assert.NoError(t, err)
	assert.Nil(t, mo)
}

func TestChatHistoryMapperEmptyConversation(t *testing.T) {
	m := NewChatHistoryMapper()

	model, err := m.ToModel(&entity.ChatHistory{UserEmail: "empty@example.com"})
	assert.NoError(t, err)

	back, err := m.ToEntity(model)
	assert.NoError(t, err)
	assert.Empty(t, back.Conversation)
}
