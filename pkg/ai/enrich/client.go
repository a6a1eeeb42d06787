package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-journal-be/pkg/llm"
	ragprompt "ai-journal-be/pkg/rag/prompt"
	"ai-journal-be/pkg/sentiment"
)

var ErrNoProvider = errors.New("enrich: no llm provider configured")

type Config struct {
	CallTimeout         time.Duration
	SummaryTemperature  float64
	MetadataTemperature float64
}

type SummaryInput struct {
	Content                  string
	RecentContext            string
	Hints                    sentiment.Hint
	Persona                  string
	SelfReportedMood         *int
	SelfReportedProductivity *int
}

type MetadataInput struct {
	Content       string
	RecentContext string
	Persona       string
}

// Client runs the two generative calls of the enrichment pipeline.
type Client struct {
	provider llm.LLMProvider
	cfg      Config
}

func NewClient(provider llm.LLMProvider, cfg Config) (*Client, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if cfg.SummaryTemperature == 0 {
		cfg.SummaryTemperature = 0.7
	}
	if cfg.MetadataTemperature == 0 {
		cfg.MetadataTemperature = 0.2
	}
	return &Client{provider: provider, cfg: cfg}, nil
}

// Summarize returns the trimmed narrative, which should end with the
// "Mood: X/10, Productivity: Y/10" trailer read by ParseScores.
func (c *Client) Summarize(ctx context.Context, in SummaryInput) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	builder := &ragprompt.SummaryBuilder{
		Content:                  in.Content,
		RecentContext:            in.RecentContext,
		Hints:                    in.Hints,
		Persona:                  in.Persona,
		SelfReportedMood:         in.SelfReportedMood,
		SelfReportedProductivity: in.SelfReportedProductivity,
	}

	out, err := c.provider.Generate(ctx, builder.Build(), llm.WithTemperature(c.cfg.SummaryTemperature))
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// ExtractMetadata asks for a JSON-only reply. Only a provider error is
// returned; a malformed reply degrades inside ParseMetadata.
func (c *Client) ExtractMetadata(ctx context.Context, in MetadataInput) (*Metadata, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	builder := &ragprompt.MetadataBuilder{
		Content:       in.Content,
		RecentContext: in.RecentContext,
		Persona:       in.Persona,
		Schema:        MetadataSchema(),
	}

	out, err := c.provider.Generate(ctx, builder.Build(),
		llm.WithTemperature(c.cfg.MetadataTemperature),
		llm.WithJSONResponse(),
	)
	if err != nil {
		return nil, fmt.Errorf("metadata extraction failed: %w", err)
	}
	return ParseMetadata(out), nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.CallTimeout)
}
