package embedding

import (
	"context"

	"ai-journal-be/internal/pkg/logger"
)

// Embedder wraps a provider so that callers always receive a vector of the
// configured dimension. Any provider failure degrades to a zero vector.
type Embedder struct {
	provider  EmbeddingProvider
	dimension int
	logger    logger.ILogger
}

func NewEmbedder(provider EmbeddingProvider, dimension int, log logger.ILogger) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{
		provider:  provider,
		dimension: dimension,
		logger:    log,
	}
}

func (e *Embedder) Dimension() int {
	return e.dimension
}

// Embed never returns an error. An all-zero result means "no signal".
func (e *Embedder) Embed(ctx context.Context, text string) []float32 {
	if e.provider == nil {
		e.logger.Warn("EMBEDDING", "No embedding provider configured, using zero vector", nil)
		return make([]float32, e.dimension)
	}

	values, err := e.provider.Generate(ctx, text, TaskRetrievalDocument)
	if err != nil {
		e.logger.Warn("EMBEDDING", "Embedding provider failed, using zero vector", map[string]interface{}{
			"error": err.Error(),
		})
		return make([]float32, e.dimension)
	}

	if len(values) != e.dimension {
		e.logger.Warn("EMBEDDING", "Embedding has unexpected dimension, using zero vector", map[string]interface{}{
			"got":  len(values),
			"want": e.dimension,
		})
		return make([]float32, e.dimension)
	}

	return values
}

// IsZero reports whether v carries no signal.
func IsZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
