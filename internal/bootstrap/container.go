package bootstrap

import (
	"context"
	"log"

	"metro-chatbot-be/internal/config"
	"metro-chatbot-be/internal/controller"
	"metro-chatbot-be/internal/handler"
	"metro-chatbot-be/internal/pkg/logger"
	"metro-chatbot-be/internal/pkg/mailer"
	"metro-chatbot-be/internal/repository/memory"
	"metro-chatbot-be/internal/repository/redisstore"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/internal/service"
	"metro-chatbot-be/internal/websocket"
	"metro-chatbot-be/pkg/answer"
	"metro-chatbot-be/pkg/dialog/assemble"
	"metro-chatbot-be/pkg/dialog/classify"
	"metro-chatbot-be/pkg/dialog/engine"
	"metro-chatbot-be/pkg/dialog/route"
	"metro-chatbot-be/pkg/embedding"
	"metro-chatbot-be/pkg/llm/factory"
	"metro-chatbot-be/pkg/store"

	pktNats "metro-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	UserController      controller.IUserController
	AuthController      controller.IAuthController
	DirectoryController controller.IDirectoryController
	KnowledgeController controller.IKnowledgeController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ChatWsHandler *handler.ChatWsHandler
	WebSocketHub  *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis (optional, enables multi-instance websocket fanout)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Websocket session storage: Redis when available so conversations can
	// resume on any instance, in-memory otherwise.
	var sessionRepo store.SessionStore
	if rdb != nil {
		sessionRepo = redisstore.NewSessionRepository(rdb)
	} else {
		sessionRepo = memory.NewSessionRepository()
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat_ws.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Dialogue Core
	if err := classify.ValidatePolicies(); err != nil {
		log.Fatalf("[FATAL] Invalid category policies: %v", err)
	}
	if err := assemble.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid source handlers: %v", err)
	}

	classifier, err := classify.LoadOrFallback(cfg.Chat.ClassifierModelPath)
	if err != nil {
		log.Printf("[WARN] Trained classifier unavailable (%v), using keyword fallback", err)
	}
	router := route.NewRouter(route.Mode(cfg.Chat.RouterMode))

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.DocumentTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.DocumentTopic,
		uowFactory,
		embeddingProvider,
		natsPub,
	)

	userService := service.NewUserService(uowFactory, emailService, natsPub)
	gateway := service.NewDirectoryGateway(uowFactory, userService)

	assembler := assemble.NewAssembler(gateway, log.Default())
	answerGenerator := answer.NewGenerator(llmProvider, log.Default())
	dialogueEngine := engine.NewEngine(classifier, router, assembler, gateway, answerGenerator, log.Default())

	chatService := service.NewChatService(dialogueEngine, uowFactory, natsPub)
	directoryService := service.NewDirectoryService(uowFactory)
	knowledgeService := service.NewKnowledgeService(uowFactory, publisherService, embeddingProvider)
	authService := service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	// 6. WebSocket Chat
	chatWsHandler := handler.NewChatWsHandler(chatService, sessionRepo, wsHub, wsLogger)

	if natsSub != nil {
		announcer := service.NewAnnouncerService(natsSub, wsHub)
		go announcer.Start()
	}

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"router_mode":  cfg.Chat.RouterMode,
		"llm_provider": cfg.Ai.LLMProvider,
	})

	// 7. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		UserController:      controller.NewUserController(userService),
		AuthController:      controller.NewAuthController(authService),
		DirectoryController: controller.NewDirectoryController(directoryService),
		KnowledgeController: controller.NewKnowledgeController(knowledgeService),

		ConsumerService: consumerService,

		ChatWsHandler: chatWsHandler,
		WebSocketHub:  wsHub,
	}
}
