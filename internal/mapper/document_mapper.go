package mapper

import (
	"github.com/pgvector/pgvector-go"

	"metro-chatbot-be/internal/entity"
	"metro-chatbot-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:        d.Id,
		Title:     d.Title,
		Content:   d.Content,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		Id:        d.Id,
		Title:     d.Title,
		Content:   d.Content,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
	}
}

func (m *DocumentMapper) ToEntities(documents []model.Document) []entity.Document {
	entities := make([]entity.Document, 0, len(documents))
	for i := range documents {
		entities = append(entities, *m.ToEntity(&documents[i]))
	}
	return entities
}

func (m *DocumentMapper) ChunkToEntity(c *model.DocumentEmbedding) *entity.DocumentChunk {
	if c == nil {
		return nil
	}
	return &entity.DocumentChunk{
		Id:             c.Id,
		DocumentId:     c.DocumentId,
		Text:           c.Document,
		EmbeddingValue: c.EmbeddingValue.Slice(),
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}

func (m *DocumentMapper) ChunkToModel(c *entity.DocumentChunk) *model.DocumentEmbedding {
	if c == nil {
		return nil
	}
	return &model.DocumentEmbedding{
		Id:             c.Id,
		DocumentId:     c.DocumentId,
		Document:       c.Text,
		EmbeddingValue: pgvector.NewVector(c.EmbeddingValue),
		ChunkIndex:     c.ChunkIndex,
		CreatedAt:      c.CreatedAt,
	}
}
