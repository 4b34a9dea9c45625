package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

func TestHubRegisterUnregister(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	client := &Client{
		Hub:       h,
		SessionID: uuid.New(),
		Send:      make(chan []byte, 1),
	}

	h.register <- client
	assert.Eventually(t, func() bool { return h.clientCount() == 1 }, time.Second, 10*time.Millisecond)

	h.unregister <- client
	assert.Eventually(t, func() bool { return h.clientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubDropsSlowClientWithoutPanic(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	// No reader and no buffer, so every delivery hits the slow path.
	client := &Client{
		Hub:       h,
		SessionID: uuid.New(),
		Send:      make(chan []byte),
	}
	h.register <- client
	assert.Eventually(t, func() bool { return h.clientCount() == 1 }, time.Second, 10*time.Millisecond)

	// Repeated broadcasts must drop the client exactly once; a second
	// removal attempt for the same client is a no-op, never a panic.
	h.Broadcast(map[string]string{"event": "first"})
	h.Broadcast(map[string]string{"event": "second"})

	assert.Eventually(t, func() bool { return h.clientCount() == 0 }, time.Second, 10*time.Millisecond)

	// The unregister handler is the sole closer of Send.
	select {
	case _, open := <-client.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}
