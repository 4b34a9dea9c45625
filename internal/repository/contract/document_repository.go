package contract

import (
	"context"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredDocumentChunk pairs a chunk with its cosine similarity against the
// query vector.
type ScoredDocumentChunk struct {
	Chunk      *entity.DocumentChunk
	Similarity float64
}

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)

	CreateChunks(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteChunksByDocumentId(ctx context.Context, documentId uuid.UUID) error
	SearchSimilarChunks(ctx context.Context, embedding []float32, limit int) ([]*ScoredDocumentChunk, error)
}
