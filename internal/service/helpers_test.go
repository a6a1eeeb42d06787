package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"ai-journal-be/internal/model"
	"ai-journal-be/internal/pkg/logger"
	"ai-journal-be/internal/repository/unitofwork"
	"ai-journal-be/pkg/ai/enrich"
	"ai-journal-be/pkg/database"
	"ai-journal-be/pkg/embedding"
	"ai-journal-be/pkg/events"
	"ai-journal-be/pkg/llm"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testDimension = 4

var errOutage = errors.New("generative endpoint unavailable")

func setupTestDB(t *testing.T) (*gorm.DB, unitofwork.RepositoryFactory) {
	t.Helper()
	db, err := database.NewSQLiteMemory()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.AllModels()...))
	return db, unitofwork.NewRepositoryFactory(db)
}

// fakeLLM answers summary prompts with narrative and JSON-mode prompts with
// metadata. It is called from two goroutines at once.
type fakeLLM struct {
	mu          sync.Mutex
	narrative   string
	metadata    string
	summaryErr  error
	metadataErr error
	prompts     []string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, options...)
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)

	if llm.ApplyOptions(llm.Options{}, options...).JSON {
		return f.metadata, f.metadataErr
	}
	return f.narrative, f.summaryErr
}

func (f *fakeLLM) summaryPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.prompts {
		if strings.Contains(p, "reflective summary") {
			return p
		}
	}
	return ""
}

type fakeEmbeddingProvider struct {
	values []float32
	err    error
}

func (f fakeEmbeddingProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return f.values, f.err
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []events.NoteEnriched
}

func (r *recordingNotifier) NotifyNoteEnriched(ctx context.Context, event events.NoteEnriched) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func newTestAiClient(t *testing.T, provider llm.LLMProvider) *enrich.Client {
	t.Helper()
	client, err := enrich.NewClient(provider, enrich.Config{})
	require.NoError(t, err)
	return client
}

func newTestEmbedder(values []float32) *embedding.Embedder {
	return embedding.NewEmbedder(fakeEmbeddingProvider{values: values}, testDimension, logger.NewNopLogger())
}

func intPtr(n int) *int {
	return &n
}
