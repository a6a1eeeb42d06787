package jina

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-journal-be/pkg/embedding"
)

const defaultBaseURL = "https://api.jina.ai/v1/embeddings"

type JinaProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

var _ embedding.EmbeddingProvider = (*JinaProvider)(nil)

func NewJinaProvider(apiKey, baseURL string) (*JinaProvider, error) {
	if apiKey == "" {
		return nil, embedding.ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &JinaProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   "jina-embeddings-v2-base-en", // 768 dims
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (p *JinaProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	jsonData, err := json.Marshal(embeddingRequest{Model: p.model, Input: []string{text}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jina api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var apiErr errorResponse
	if err := json.Unmarshal(bodyBytes, &apiErr); err == nil && apiErr.Error != nil {
		return nil, fmt.Errorf("jina api returned error: %s", apiErr.Error.Message)
	}

	return embedding.ParseEmbeddingResponse(bodyBytes)
}
