package handler

import (
	"context"
	"encoding/json"
	"time"

	"metro-chatbot-be/internal/constant"
	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/pkg/logger"
	"metro-chatbot-be/internal/service"
	internalWS "metro-chatbot-be/internal/websocket"
	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatWsHandler runs the dialogue over a websocket. Unlike the REST turn
// endpoint the server holds the session here, keyed by a session id the
// client may supply to resume a conversation.
type ChatWsHandler struct {
	chatService  service.IChatService
	sessionStore store.SessionStore
	hub          *internalWS.Hub
	logger       logger.ILogger
}

func NewChatWsHandler(chatService service.IChatService, sessionStore store.SessionStore, hub *internalWS.Hub, log logger.ILogger) *ChatWsHandler {
	return &ChatWsHandler{
		chatService:  chatService,
		sessionStore: sessionStore,
		hub:          hub,
		logger:       log,
	}
}

func (h *ChatWsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Query("session_id"))
	if err != nil {
		sessionID = uuid.New()
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info(constant.ModuleHub, "Starting chat session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID, h.handleTurn)
			h.logger.Info(constant.ModuleHub, "Chat session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *ChatWsHandler) handleTurn(ctx context.Context, sessionID uuid.UUID, message string) ([]byte, error) {
	sess, found := h.sessionStore.Get(sessionID.String())
	if !found {
		sess = store.NewChatSession(sessionID.String())
	}

	res, err := h.chatService.ProcessMessage(ctx, &dto.ChatRequest{
		Message:      message,
		SessionState: sess.Dialogue,
		History:      sess.History,
	})
	if err != nil {
		return nil, err
	}

	sess.Dialogue = res.SessionState
	sess.History = append(sess.History, dialog.HistoryTurn{
		User: message,
		Bot:  res.BotMessage,
		Time: time.Now().UTC(),
	})
	h.sessionStore.Save(sess)

	return json.Marshal(res)
}

// RegisterRoutes registers the chat websocket route.
func (h *ChatWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chat/ws", h.ServeWs)
}
