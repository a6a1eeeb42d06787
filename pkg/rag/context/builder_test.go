package context

import (
	"fmt"
	"strings"
	"testing"

	"ai-journal-be/pkg/rag/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildContext(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	missing := uuid.New()

	lookup := map[uuid.UUID]string{
		a: "Long run by the river.\n\nLater I cooked dinner.",
		b: "Team meeting went well.",
	}

	t.Run("distance path", func(t *testing.T) {
		got := BuildContext([]search.Neighbor{
			{NoteId: a, Score: 0.1234, Metric: search.MetricDistance},
			{NoteId: missing, Score: 0.2, Metric: search.MetricDistance},
			{NoteId: b, Score: 0.5, Metric: search.MetricDistance},
		}, lookup)

		want := fmt.Sprintf("[note %s | dist=0.123] Long run by the river.\n\n[note %s | dist=0.500] Team meeting went well.", a, b)
		assert.Equal(t, want, got)
	})

	t.Run("similarity path", func(t *testing.T) {
		got := BuildContext([]search.Neighbor{{NoteId: b, Score: 0.87654, Metric: search.MetricSimilarity}}, lookup)
		assert.Equal(t, fmt.Sprintf("[note %s | sim=0.877] Team meeting went well.", b), got)
		assert.False(t, strings.Contains(got, "dist="))
	})

	t.Run("no neighbors", func(t *testing.T) {
		assert.Equal(t, "", BuildContext(nil, lookup))
	})
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, NoPastEntries, OrPlaceholder(""))
	assert.Equal(t, NoPastEntries, OrPlaceholder("  \n"))
	assert.Equal(t, "[note x | sim=0.9] hi", OrPlaceholder("[note x | sim=0.9] hi"))
}
