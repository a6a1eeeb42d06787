package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbeddingResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []float32
		wantErr bool
	}{
		{name: "embedding.values", body: `{"embedding":{"values":[0.1,0.2]}}`, want: []float32{0.1, 0.2}},
		{name: "embeddings[0].values", body: `{"embeddings":[{"values":[1,2,3]}]}`, want: []float32{1, 2, 3}},
		{name: "data[0].embedding", body: `{"data":[{"object":"embedding","embedding":[0.5]}]}`, want: []float32{0.5}},
		{name: "bare embedding array", body: `{"embedding":[3,4]}`, want: []float32{3, 4}},
		{name: "empty values", body: `{"embedding":{"values":[]}}`, wantErr: true},
		{name: "unknown shape", body: `{"vector":[1,2]}`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEmbeddingResponse([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(GeminiConfig{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiProviderFallsBackToSecondaryVersion(t *testing.T) {
	var mu sync.Mutex
	var paths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req EmbeddingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Content.Parts[0].Text)

		if strings.HasPrefix(r.URL.Path, "/v1/") {
			http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"embedding":{"values":[0.25,0.5]}}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(GeminiConfig{ApiKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	values, err := p.Generate(context.Background(), "hello", TaskRetrievalDocument)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.5}, values)
	assert.Equal(t, []string{
		"/v1/models/text-embedding-004:embedContent",
		"/v1beta/models/text-embedding-004:embedContent",
	}, paths)
}

func TestGeminiProviderPrimarySuccessSkipsFallback(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"embedding":{"values":[1]}}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(GeminiConfig{ApiKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeminiProviderBothVersionsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(GeminiConfig{ApiKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "x", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v1:")
	assert.Contains(t, err.Error(), "v1beta:")
}
