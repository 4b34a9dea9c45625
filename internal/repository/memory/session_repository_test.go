package memory

import (
	"testing"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	sess := store.NewChatSession("abc-123")
	sess.Dialogue.State = dialog.StateWaitingOption
	repo.Save(sess)

	got, found := repo.Get("abc-123")
	assert.True(t, found)
	assert.Equal(t, dialog.StateWaitingOption, got.Dialogue.State)
	assert.False(t, got.UpdatedAt.IsZero())

	_, found = repo.Get("missing")
	assert.False(t, found)

	repo.Delete("abc-123")
	_, found = repo.Get("abc-123")
	assert.False(t, found)
}
