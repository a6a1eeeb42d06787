package contract

import (
	"context"
	"errors"

	"ai-journal-be/internal/entity"
	"ai-journal-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrVectorSearchUnavailable is returned when the store cannot run a native
// nearest-neighbour query. Callers fall back to in-memory ranking.
var ErrVectorSearchUnavailable = errors.New("vector search is unavailable")

// NoteDistance is a cosine distance from pgvector's <=> operator; lower is closer.
type NoteDistance struct {
	NoteId   uuid.UUID
	Distance float64
}

type NoteEmbeddingRepository interface {
	// Upsert inserts or replaces the single embedding row of a note.
	Upsert(ctx context.Context, embedding *entity.NoteEmbedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteEmbedding, error)
	NearestByVector(ctx context.Context, userId uuid.UUID, vector []float32, k int, excludeNoteId uuid.UUID) ([]NoteDistance, error)
}
