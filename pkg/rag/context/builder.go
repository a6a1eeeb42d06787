package context

import (
	"fmt"
	"strings"

	"ai-journal-be/pkg/rag/search"
	"ai-journal-be/pkg/utils"

	"github.com/google/uuid"
)

// NoPastEntries is what prompts show when BuildContext yields nothing.
const NoPastEntries = "(no past entries available)"

// BuildContext renders one line per neighbor, tagged with the note id and its
// closeness, using the note's first chunk as the snippet. Neighbors missing from
// lookup are skipped.
func BuildContext(neighbors []search.Neighbor, lookup map[uuid.UUID]string) string {
	lines := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		content, ok := lookup[n.NoteId]
		if !ok {
			continue
		}
		snippet := utils.MainChunk(content, utils.DefaultChunkSize)
		if snippet == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[note %s | %s=%.3f] %s", n.NoteId, n.Metric, n.Score, snippet))
	}
	return strings.Join(lines, "\n\n")
}

// OrPlaceholder swaps an empty context for NoPastEntries.
func OrPlaceholder(contextText string) string {
	if strings.TrimSpace(contextText) == "" {
		return NoPastEntries
	}
	return contextText
}
