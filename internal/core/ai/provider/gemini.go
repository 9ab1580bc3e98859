package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	config config.GeminiConfig
	client *resty.Client
}

// NewGeminiClient creates a Gemini provider.
func NewGeminiClient(cfg config.GeminiConfig) *GeminiClient {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		config: cfg,
		client: client,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64  `json:"temperature,omitempty"`
		TopP            float64  `json:"topP,omitempty"`
		MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
		StopSequences   []string `json:"stopSequences,omitempty"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Generate sends the request to the generateContent endpoint.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	body := geminiRequest{}
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		body.Contents = append(body.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}
	body.GenerationConfig.Temperature = req.Temperature
	body.GenerationConfig.TopP = req.TopP
	body.GenerationConfig.MaxOutputTokens = req.MaxTokens
	if body.GenerationConfig.MaxOutputTokens == 0 {
		body.GenerationConfig.MaxOutputTokens = c.config.MaxTokens
	}
	body.GenerationConfig.StopSequences = req.Stop

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.APIKey).
		SetBody(body).
		Post(fmt.Sprintf("/models/%s:generateContent", c.config.Model))
	common.LogAICall(c.config.Model, time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Gemini API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Model),
		)
		return nil, fmt.Errorf("Gemini API returned error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result geminiResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	content := ""
	for _, part := range result.Candidates[0].Content.Parts {
		content += part.Text
	}
	if content == "" {
		return nil, fmt.Errorf("empty content in Gemini response")
	}

	out := &Response{Content: content}
	out.Usage.PromptTokens = result.UsageMetadata.PromptTokenCount
	out.Usage.CompletionTokens = result.UsageMetadata.CandidatesTokenCount
	out.Usage.TotalTokens = result.UsageMetadata.TotalTokenCount
	return out, nil
}

// GetModel returns the configured model name.
func (c *GeminiClient) GetModel() string {
	return c.config.Model
}

// GetTimeout returns the configured request timeout.
func (c *GeminiClient) GetTimeout() time.Duration {
	return c.config.Timeout
}

// Close releases client resources.
func (c *GeminiClient) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
