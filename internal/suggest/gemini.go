package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lifeplanner/internal/logs"
)

const (
	DefaultModel   = "gemini-3-flash-preview"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxErrorBodyBytes = 512
)

var (
	ErrNoAPIKey      = errors.New("suggest: no API key configured")
	ErrEmptyResponse = errors.New("suggest: response has no candidates")
)

// GeminiClient calls the generateContent REST endpoint.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// GeminiOption configures a GeminiClient.
type GeminiOption func(*GeminiClient)

func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) {
		if url != "" {
			c.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.httpClient = hc }
}

// NewGeminiClient creates a client. Calls have no timeout of their own;
// they end when ctx does.
func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends req and returns the concatenated text parts of the first
// candidate.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
	}
	if req.JSON {
		body.GenerationConfig = &geminiGenerationConfig{ResponseMimeType: "application/json"}
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(requestJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	logs.Logger.Printf("Calling %s (json=%v, %d prompt chars)", c.model, req.JSON, len(req.Prompt))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyStr := string(respBody)
		if len(bodyStr) > maxErrorBodyBytes {
			bodyStr = bodyStr[:maxErrorBodyBytes]
		}
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, bodyStr)
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(apiResp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	logs.Logger.Printf("Generated %d chars via %s", sb.Len(), c.model)
	return sb.String(), nil
}
