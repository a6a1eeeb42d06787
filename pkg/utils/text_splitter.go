package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultChunkSize is the character budget used when callers pass a non-positive max.
const DefaultChunkSize = 400

var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n`)

// ChunkText splits text into ordered, non-empty chunks of at most maxChars characters.
// Paragraphs (blank-line separated) are kept whole when they fit; longer paragraphs are
// split into sentences and packed greedily. A single sentence longer than maxChars is
// emitted on its own. The first chunk is the note's main chunk.
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultChunkSize
	}

	var chunks []string
	for _, para := range paragraphBreak.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= maxChars {
			chunks = append(chunks, para)
			continue
		}

		var buf strings.Builder
		for _, sentence := range splitSentences(para) {
			if buf.Len() == 0 {
				buf.WriteString(sentence)
				continue
			}
			if utf8.RuneCountInString(buf.String())+1+utf8.RuneCountInString(sentence) > maxChars {
				chunks = append(chunks, buf.String())
				buf.Reset()
				buf.WriteString(sentence)
				continue
			}
			buf.WriteByte(' ')
			buf.WriteString(sentence)
		}
		if buf.Len() > 0 {
			chunks = append(chunks, buf.String())
		}
	}

	return chunks
}

// MainChunk returns the first chunk of text, or the trimmed text itself when nothing splits out.
func MainChunk(text string, maxChars int) string {
	chunks := ChunkText(text, maxChars)
	if len(chunks) == 0 {
		return strings.TrimSpace(text)
	}
	return chunks[0]
}

// splitSentences breaks on '.', '!' or '?' followed by whitespace.
func splitSentences(para string) []string {
	var sentences []string
	runes := []rune(para)
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					sentences = append(sentences, s)
				}
				start = i + 1
			}
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
