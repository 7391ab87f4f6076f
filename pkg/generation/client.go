package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saulluiz/api-recipe-generator/domain"
	"github.com/saulluiz/api-recipe-generator/internal/utils"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"

	systemPrompt = "You are an assistant that returns only valid JSON, with no markdown formatting."
)

type (
	// Client is a single opaque text completion call against an external
	// language-model endpoint.
	Client interface {
		Complete(ctx context.Context, prompt string) (string, error)
	}

	chatClient struct {
		apiKey     string
		baseURL    string
		model      string
		httpClient *http.Client
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model       string        `json:"model"`
		Messages    []chatMessage `json:"messages"`
		Temperature float64       `json:"temperature,omitempty"`
		MaxTokens   int           `json:"max_tokens,omitempty"`
	}

	chatResponse struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
)

// NewClient builds the chat-completions client from configuration. A missing
// API key is a startup failure, not a per-request one.
func NewClient() (Client, error) {
	apiKey := utils.GetConfig("LLM_API_KEY")
	if apiKey == "" {
		return nil, domain.ErrGenerationNotConfigured
	}

	baseURL := utils.GetConfig("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := utils.GetConfig("LLM_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &chatClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

func (c *chatClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGenerationFailed, resp.Status, string(respBody))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrGenerationFailed)
	}

	return parsed.Choices[0].Message.Content, nil
}
