package prompt

import (
	"fmt"
	"strings"

	ragcontext "ai-journal-be/pkg/rag/context"
	"ai-journal-be/pkg/sentiment"
)

// SummaryBuilder builds the reflective-summary prompt for a journal entry.
type SummaryBuilder struct {
	Content                  string
	RecentContext            string
	Hints                    sentiment.Hint
	Persona                  string
	SelfReportedMood         *int
	SelfReportedProductivity *int
}

func (b *SummaryBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a thoughtful journaling companion. Write a reflective summary of today's entry in 2-4 sentences.\n")
	prompt.WriteString("</task>\n\n")

	writePersona(&prompt, b.Persona)
	writePastEntries(&prompt, b.RecentContext)

	prompt.WriteString("<signals>\n")
	prompt.WriteString(fmt.Sprintf("Local sentiment estimate: polarity=%s, emotion=%s, confidence=%.2f\n",
		b.Hints.Polarity, b.Hints.Emotion, b.Hints.Confidence))
	if b.SelfReportedMood != nil && b.SelfReportedProductivity != nil {
		prompt.WriteString(fmt.Sprintf("User-reported mood: %d/10, productivity: %d/10\n",
			*b.SelfReportedMood, *b.SelfReportedProductivity))
	}
	prompt.WriteString("</signals>\n\n")

	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("- Connect today's entry to the past entries where there is real continuity.\n")
	prompt.WriteString("- Surface emotional signals the writer implies but does not state.\n")
	prompt.WriteString("- Do not simply rephrase the entry; add perspective.\n")
	prompt.WriteString("- Independently judge mood and productivity on a 1-10 scale from the writing itself.\n")
	prompt.WriteString("- End with exactly one final line in this format: Mood: X/10, Productivity: Y/10\n")
	prompt.WriteString("</guidelines>\n\n")

	prompt.WriteString("<entry>\n")
	prompt.WriteString(b.Content)
	prompt.WriteString("\n</entry>\n")

	return prompt.String()
}

// MetadataBuilder builds the JSON-only metadata extraction prompt.
type MetadataBuilder struct {
	Content       string
	RecentContext string
	Persona       string
	Schema        string
}

func (b *MetadataBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("Extract structured metadata from the journal entry below.\n")
	prompt.WriteString("Respond with a single JSON object and nothing else: no prose, no code fences.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<format>\n")
	prompt.WriteString("Keys:\n")
	prompt.WriteString("- mood: integer 1-10, or null if it cannot be inferred\n")
	prompt.WriteString("- productivity: integer 1-10, or null\n")
	prompt.WriteString("- tags: 3-8 short lowercase keywords, or null\n")
	prompt.WriteString("- sentiment: {\"polarity\": positive|neutral|negative, \"emotion\": joyful|stressed|sad|angry|calm|neutral, \"confidence\": 0-1}, or null\n")
	if b.Schema != "" {
		prompt.WriteString("JSON Schema:\n")
		prompt.WriteString(b.Schema)
		prompt.WriteString("\n")
	}
	prompt.WriteString("</format>\n\n")

	writePersona(&prompt, b.Persona)
	writePastEntries(&prompt, b.RecentContext)

	prompt.WriteString("<entry>\n")
	prompt.WriteString(b.Content)
	prompt.WriteString("\n</entry>\n")

	return prompt.String()
}

func writePersona(prompt *strings.Builder, persona string) {
	if persona == "" {
		return
	}
	prompt.WriteString("<persona>\n")
	prompt.WriteString(persona)
	prompt.WriteString("\n</persona>\n\n")
}

func writePastEntries(prompt *strings.Builder, recent string) {
	prompt.WriteString("<past_entries>\n")
	prompt.WriteString(ragcontext.OrPlaceholder(recent))
	prompt.WriteString("\n</past_entries>\n\n")
}
