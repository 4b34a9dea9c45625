package service

import (
	"context"
	"log"

	"metro-chatbot-be/pkg/events"
	pktNats "metro-chatbot-be/pkg/nats"
)

// Announcer relays selected bus events to every connected chat client.
type Announcer interface {
	Broadcast(announcement interface{})
}

type IAnnouncerService interface {
	Start()
}

type announcerService struct {
	subscriber *pktNats.Subscriber
	hub        Announcer
}

func NewAnnouncerService(subscriber *pktNats.Subscriber, hub Announcer) IAnnouncerService {
	return &announcerService{
		subscriber: subscriber,
		hub:        hub,
	}
}

func (s *announcerService) Start() {
	err := s.subscriber.Subscribe("events."+events.TypeDocumentIngested, "chatbot-announcer", func(ctx context.Context, event events.Event) error {
		s.hub.Broadcast(map[string]interface{}{
			"event": events.TypeDocumentIngested,
			"data":  event.Payload(),
		})
		return nil
	})
	if err != nil {
		log.Printf("[WARN] Failed to subscribe to %s events: %v", events.TypeDocumentIngested, err)
	}
}
