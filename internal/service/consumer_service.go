package service

import (
	"context"
	"encoding/json"
	"log"

	"metro-chatbot-be/internal/constant"
	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/pkg/embedding"
	"metro-chatbot-be/pkg/events"
	pktNats "metro-chatbot-be/pkg/nats"
	"metro-chatbot-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestDocumentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing document ingestion for DocumentId: %s", payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if document == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack() // Document deleted? Ack.
		return
	}

	content := document.Title + "\n\n" + document.Content

	chunks := utils.SplitText(content, constant.DocumentChunkSize, constant.DocumentChunkOverlap)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newChunks []*entity.DocumentChunk
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of document %s: %v", i, payload.DocumentId, err)
			msg.Nack()
			return
		}
		newChunks = append(newChunks, &entity.DocumentChunk{
			DocumentId:     document.Id,
			Text:           chunk,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
		})
	}

	// Re-ingestion replaces any chunks from a previous run.
	if err := uow.DocumentRepository().DeleteChunksByDocumentId(ctx, document.Id); err != nil {
		log.Printf("[ERROR] Failed to delete stale chunks for document %s: %v", document.Id, err)
		msg.Nack()
		return
	}
	if err := uow.DocumentRepository().CreateChunks(ctx, newChunks); err != nil {
		log.Printf("[ERROR] Failed to store chunks for document %s: %v", document.Id, err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.NewDocumentIngestedEvent(document.Id.String(), len(newChunks))
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish %s event: %v", events.TypeDocumentIngested, err)
		}
	}

	log.Printf("[INFO] Document %s ingested with %d chunks", document.Id, len(newChunks))
	msg.Ack()
}
