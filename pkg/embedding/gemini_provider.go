package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

type GeminiConfig struct {
	ApiKey  string
	Model   string
	BaseURL string
	// Versions are tried in order; the first is primary, the rest are fallbacks.
	Versions []string
	Timeout  time.Duration
}

type GeminiProvider struct {
	apiKey   string
	model    string
	baseURL  string
	versions []string
	client   *http.Client
}

func NewGeminiProvider(cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.ApiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-004"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	if len(cfg.Versions) == 0 {
		cfg.Versions = []string{"v1", "v1beta"}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &GeminiProvider{
		apiKey:   cfg.ApiKey,
		model:    cfg.Model,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		versions: cfg.Versions,
		client:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	geminiReq := EmbeddingRequest{
		Model: "models/" + p.model,
		Content: EmbeddingRequestContent{
			Parts: []EmbeddingRequestContentPart{{Text: text}},
		},
		TaskType: taskType,
	}
	geminiReqJson, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, version := range p.versions {
		values, err := p.embedWithVersion(ctx, version, geminiReqJson)
		if err == nil {
			return values, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", version, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

func (p *GeminiProvider) embedWithVersion(ctx context.Context, version string, payload []byte) ([]float32, error) {
	endpoint := fmt.Sprintf("%s/%s/models/%s:embedContent", p.baseURL, version, p.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("error from gemini response, code %d, body %s", res.StatusCode, string(resByte))
	}

	return ParseEmbeddingResponse(resByte)
}
