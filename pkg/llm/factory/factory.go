package factory

import (
	"context"
	"fmt"
	"time"

	"ai-journal-be/pkg/llm"
	"ai-journal-be/pkg/llm/gemini"
	"ai-journal-be/pkg/llm/ollama"
)

type Config struct {
	Provider      string // "gemini" or "ollama"
	Model         string
	OllamaBaseURL string
	GeminiAPIKey  string
	GeminiBaseURL string
	Timeout       time.Duration
}

func NewLLMProvider(ctx context.Context, cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "gemini", "":
		p, err := gemini.NewGeminiProvider(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.Model,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.OllamaBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
