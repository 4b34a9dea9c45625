package service

import (
	"context"
	"encoding/json"
	"fmt"

	"metro-chatbot-be/internal/dto"
	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/unitofwork"
	"metro-chatbot-be/pkg/embedding"
)

type IKnowledgeService interface {
	// AddDocument stores the document and queues it for asynchronous
	// chunking and embedding.
	AddDocument(ctx context.Context, req *dto.AddDocumentRequest) (*dto.AddDocumentResponse, error)
	SearchDocuments(ctx context.Context, req *dto.SearchDocumentRequest) ([]*dto.DocumentChunkResponse, error)
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
	}
}

func (s *knowledgeService) AddDocument(ctx context.Context, req *dto.AddDocumentRequest) (*dto.AddDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document := &entity.Document{
		Title:   req.Title,
		Content: req.Content,
		Source:  req.Source,
	}
	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishIngestDocumentMessage{
		DocumentId: document.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, fmt.Errorf("failed to queue document for ingestion: %w", err)
	}

	return &dto.AddDocumentResponse{Id: document.Id}, nil
}

func (s *knowledgeService) SearchDocuments(ctx context.Context, req *dto.SearchDocumentRequest) ([]*dto.DocumentChunkResponse, error) {
	res, err := s.embeddingProvider.Generate(req.Query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentRepository().SearchSimilarChunks(ctx, res.Embedding.Values, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DocumentChunkResponse, len(scored))
	for i, sc := range scored {
		responses[i] = &dto.DocumentChunkResponse{
			DocumentId: sc.Chunk.DocumentId,
			Text:       sc.Chunk.Text,
			Score:      sc.Similarity,
		}
	}
	return responses, nil
}
