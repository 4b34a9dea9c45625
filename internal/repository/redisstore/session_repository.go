package redisstore

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"metro-chatbot-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "chat_session:"
	sessionTTL = time.Hour
)

// SessionRepository keeps websocket chat sessions in Redis so conversations
// survive instance restarts and can resume on any backend in the cluster.
type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func (r *SessionRepository) Save(session *store.ChatSession) {
	session.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("[WARN] Failed to marshal chat session %s: %v", session.ID, err)
		return
	}
	if err := r.rdb.Set(context.Background(), keyPrefix+session.ID, data, sessionTTL).Err(); err != nil {
		log.Printf("[WARN] Failed to save chat session %s: %v", session.ID, err)
	}
}

func (r *SessionRepository) Get(sessionID string) (*store.ChatSession, bool) {
	data, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] Failed to load chat session %s: %v", sessionID, err)
		}
		return nil, false
	}

	var session store.ChatSession
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("[WARN] Corrupt chat session %s, starting fresh: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		log.Printf("[WARN] Failed to delete chat session %s: %v", sessionID, err)
	}
}
