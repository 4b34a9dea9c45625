package events

import "time"

// Event type codes published on the bus.
const (
	TypeUserRegistered    = "USER_REGISTERED"
	TypeChatTurnCompleted = "CHAT_TURN_COMPLETED"
	TypeDocumentIngested  = "DOCUMENT_INGESTED"
)

// NewUserRegisteredEvent is emitted when the dialogue flow or the user API
// creates a new account.
func NewUserRegisteredEvent(email, name string) Event {
	return BaseEvent{
		Type: TypeUserRegistered,
		Data: map[string]interface{}{
			"email": email,
			"name":  name,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewChatTurnCompletedEvent is emitted after every processed chat turn.
func NewChatTurnCompletedEvent(email, state string) Event {
	return BaseEvent{
		Type: TypeChatTurnCompleted,
		Data: map[string]interface{}{
			"email": email,
			"state": state,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewDocumentIngestedEvent is emitted when a knowledge document has been
// chunked and embedded.
func NewDocumentIngestedEvent(documentID string, chunks int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"document_id": documentID,
			"chunks":      chunks,
		},
		OccurredAt: time.Now().UTC(),
	}
}
