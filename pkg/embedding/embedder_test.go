package embedding

import (
	"context"
	"errors"
	"testing"

	"ai-journal-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	values []float32
	err    error
}

func (s stubProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return s.values, s.err
}

func TestEmbedder(t *testing.T) {
	log := logger.NewNopLogger()
	good := []float32{0.1, 0.2, 0.3, 0.4}

	tests := []struct {
		name     string
		provider EmbeddingProvider
		want     []float32
	}{
		{name: "provider vector", provider: stubProvider{values: good}, want: good},
		{name: "provider error", provider: stubProvider{err: errors.New("boom")}, want: make([]float32, 4)},
		{name: "wrong dimension", provider: stubProvider{values: []float32{1, 2}}, want: make([]float32, 4)},
		{name: "no provider", provider: nil, want: make([]float32, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmbedder(tt.provider, 4, log)
			assert.Equal(t, tt.want, e.Embed(context.Background(), "text"))
		})
	}
}

func TestEmbedderDefaultDimension(t *testing.T) {
	e := NewEmbedder(stubProvider{err: errors.New("down")}, 0, logger.NewNopLogger())
	v := e.Embed(context.Background(), "text")
	assert.Len(t, v, DefaultDimension)
	assert.True(t, IsZero(v))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(nil))
	assert.True(t, IsZero([]float32{0, 0}))
	assert.False(t, IsZero([]float32{0, 0.001}))
}
