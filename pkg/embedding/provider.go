package embedding

import (
	"context"
	"errors"
)

// DefaultDimension matches text-embedding-004 and nomic-embed-text.
const DefaultDimension = 768

const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

var (
	ErrEmptyEmbedding = errors.New("embedding: response carried no vector")
	ErrMissingAPIKey  = errors.New("embedding: api key is not configured")
)

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
