package service

import (
	"context"
	"fmt"
	"time"

	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/engine"
	"metro-chatbot-be/pkg/events"
	pktNats "metro-chatbot-be/pkg/nats"
)

type IChatService interface {
	// ProcessMessage runs one dialogue turn. The caller owns the session
	// state; it is echoed back mutated in the response.
	ProcessMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, email string) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	engine         *engine.Engine
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewChatService(eng *engine.Engine, uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IChatService {
	return &chatService{
		engine:         eng,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *chatService) ProcessMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sess := req.SessionState
	if sess == nil {
		sess = dialog.NewSession()
	}
	if sess.Identity == nil && req.UserProfile != nil {
		sess.Identity = req.UserProfile
	}

	resp := s.engine.Turn(ctx, req.Message, sess, req.History)

	if s.eventPublisher != nil && resp.Session != nil {
		email := ""
		if resp.Session.Identity != nil {
			email = resp.Session.Identity.Email
		}
		evt := events.NewChatTurnCompletedEvent(email, string(resp.Session.State))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeChatTurnCompleted, err)
		}
	}

	return &dto.ChatResponse{
		BotMessage:   resp.Message,
		Recommends:   resp.Recommends,
		NextStep:     resp.NextSteps,
		SessionState: resp.Session,
		Debug: dto.ChatDebug{
			State:     string(resp.Session.State),
			Timestamp: time.Now().UTC(),
		},
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, email string) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	history, err := uow.ChatHistoryRepository().FindOne(ctx, specification.ByUserEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if history == nil {
		return &dto.ChatHistoryResponse{
			UserEmail:    email,
			Conversation: []dto.ChatHistoryTurnResponse{},
		}, nil
	}

	return &dto.ChatHistoryResponse{
		UserEmail:    history.UserEmail,
		Conversation: toHistoryTurnResponses(history.Conversation),
		UpdatedAt:    history.UpdatedAt,
	}, nil
}

func toHistoryTurnResponses(turns []dialog.HistoryTurn) []dto.ChatHistoryTurnResponse {
	responses := make([]dto.ChatHistoryTurnResponse, len(turns))
	for i, t := range turns {
		responses[i] = dto.ChatHistoryTurnResponse{
			User: t.User,
			Bot:  t.Bot,
			Time: t.Time,
		}
	}
	return responses
}
