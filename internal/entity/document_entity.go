package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id        uuid.UUID
	Title     string
	Content   string
	Source    string
	CreatedAt time.Time
}

// DocumentChunk is one embedded slice of a document.
type DocumentChunk struct {
	Id             uuid.UUID
	DocumentId     uuid.UUID
	Text           string
	EmbeddingValue []float32
	ChunkIndex     int
	Score          float64 // Populated only on similarity search results.
	CreatedAt      time.Time
}
