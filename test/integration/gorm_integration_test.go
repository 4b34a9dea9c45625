package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/pkg/database"
	"metro-chatbot-be/pkg/dialog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProductRepository())
	assert.NotNil(t, uow.DocumentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Product Repository", func(t *testing.T) {
		count, err := uow.ProductRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Product count: %d", count)
	})

	t.Run("Check Directory Round Trip", func(t *testing.T) {
		ctx := context.Background()

		product := &entity.Product{
			Name:        "Integration Panel " + uuid.New().String(),
			Description: "integration test fixture",
			Category:    "solar",
			Price:       1.0,
		}
		err := uow.ProductRepository().Create(ctx, product)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.Id)

		found, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: product.Id})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Equal(t, product.Name, found.Name)
		}

		err = uow.ProductRepository().Delete(ctx, product.Id)
		assert.NoError(t, err)
	})

	t.Run("Check Chat History Upsert", func(t *testing.T) {
		ctx := context.Background()
		email := "integration-" + uuid.New().String() + "@example.com"

		history := &entity.ChatHistory{
			UserEmail: email,
			Conversation: []dialog.HistoryTurn{
				{User: "hello", Bot: "Hello there"},
			},
		}
		err := uow.ChatHistoryRepository().Upsert(ctx, history)
		assert.NoError(t, err)

		history.Conversation = append(history.Conversation, dialog.HistoryTurn{User: "thanks", Bot: "Any time"})
		err = uow.ChatHistoryRepository().Upsert(ctx, history)
		assert.NoError(t, err)

		found, err := uow.ChatHistoryRepository().FindOne(ctx, specification.ByUserEmail{Email: email})
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Len(t, found.Conversation, 2)
		}
	})
}
