package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type EmbeddingRequestContentPart struct {
	Text string `json:"text"`
}

type EmbeddingRequestContent struct {
	Parts []EmbeddingRequestContentPart `json:"parts"`
}

type EmbeddingRequest struct {
	Model    string                  `json:"model"`
	Content  EmbeddingRequestContent `json:"content"`
	TaskType string                  `json:"task_type,omitempty"`
}

// embeddingEnvelope covers the response shapes seen across embedding APIs:
// {"embedding":{"values":[..]}}, {"embeddings":[{"values":[..]}]},
// {"data":[{"embedding":[..]}]} and {"embedding":[..]}.
type embeddingEnvelope struct {
	Embedding  json.RawMessage `json:"embedding"`
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
}

// ParseEmbeddingResponse extracts the vector from a raw response body.
// A body without a non-empty numeric array at a known location is an error.
func ParseEmbeddingResponse(body []byte) ([]float32, error) {
	var env embeddingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}

	raw := bytes.TrimSpace(env.Embedding)
	if len(raw) > 0 && raw[0] == '{' {
		var obj struct {
			Values []float32 `json:"values"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Values) > 0 {
			return obj.Values, nil
		}
	}

	if len(env.Embeddings) > 0 && len(env.Embeddings[0].Values) > 0 {
		return env.Embeddings[0].Values, nil
	}

	if len(env.Data) > 0 && len(env.Data[0].Embedding) > 0 {
		return env.Data[0].Embedding, nil
	}

	if len(raw) > 0 && raw[0] == '[' {
		var values []float32
		if err := json.Unmarshal(raw, &values); err == nil && len(values) > 0 {
			return values, nil
		}
	}

	return nil, ErrEmptyEmbedding
}
