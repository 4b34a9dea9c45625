package dto

import (
	"github.com/google/uuid"
)

type AddDocumentRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Source  string `json:"source"`
}

type AddDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type SearchDocumentRequest struct {
	Query string `json:"query" validate:"required"`
	Limit int    `json:"limit" validate:"gte=0,lte=20"`
}

type DocumentChunkResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Text       string    `json:"text"`
	Score      float64   `json:"score"`
}

// PublishIngestDocumentMessage is the payload queued for asynchronous
// chunking and embedding.
type PublishIngestDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
