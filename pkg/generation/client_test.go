package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulluiz/api-recipe-generator/domain"
)

func newTestChatClient(baseURL string) *chatClient {
	return &chatClient{
		apiKey:     "test-key",
		baseURL:    baseURL,
		model:      "test-model",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestChatClient_Complete(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"name":"Soup"}`}},
			},
		})
	}))
	defer server.Close()

	client := newTestChatClient(server.URL)
	content, err := client.Complete(context.Background(), "make soup")

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Soup"}`, content)
	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "make soup", captured.Messages[1].Content)
}

func TestChatClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestChatClient(server.URL)
	_, err := client.Complete(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestChatClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := newTestChatClient(server.URL)
	_, err := client.Complete(context.Background(), "anything")

	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient()
	assert.ErrorIs(t, err, domain.ErrGenerationNotConfigured)
}
