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

// LMStudioClient calls a local LM Studio server over its OpenAI-style API.
type LMStudioClient struct {
	config config.LocalConfig
	client *resty.Client
}

// NewLMStudioClient creates an LM Studio provider.
func NewLMStudioClient(cfg config.LocalConfig) *LMStudioClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &LMStudioClient{
		config: cfg,
		client: client,
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
	Stream      bool      `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Generate sends the request to the chat completions endpoint.
func (c *LMStudioClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	body := chatCompletionRequest{
		Model:       c.config.Model,
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Stop:        req.Stop,
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = c.config.MaxTokens
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/v1/chat/completions")
	common.LogAICall(c.config.Model, time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to LM Studio: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("LM Studio returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.config.Model),
		)
		return nil, fmt.Errorf("LM Studio returned error (status %d): %s", resp.StatusCode(), resp.String())
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse LM Studio response: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no choices in LM Studio response")
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty content in LM Studio response")
	}

	out := &Response{Content: content}
	out.Usage.PromptTokens = result.Usage.PromptTokens
	out.Usage.CompletionTokens = result.Usage.CompletionTokens
	out.Usage.TotalTokens = result.Usage.TotalTokens
	return out, nil
}

// CheckConnection verifies the local server is reachable.
func (c *LMStudioClient) CheckConnection(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/v1/models")
	if err != nil {
		return fmt.Errorf("LM Studio unreachable at %s: %w", c.config.BaseURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("LM Studio returned status %d", resp.StatusCode())
	}
	return nil
}

// ListModels returns the model IDs loaded on the local server.
func (c *LMStudioClient) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/v1/models")
	if err != nil {
		return nil, fmt.Errorf("failed to list LM Studio models: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("LM Studio returned status %d", resp.StatusCode())
	}

	var result struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse model list: %w", err)
	}

	models := make([]string, 0, len(result.Data))
	for _, m := range result.Data {
		models = append(models, m.ID)
	}
	return models, nil
}

// GetModel returns the configured model name.
func (c *LMStudioClient) GetModel() string {
	return c.config.Model
}

// GetTimeout returns the configured request timeout.
func (c *LMStudioClient) GetTimeout() time.Duration {
	return c.config.Timeout
}

// Close releases client resources.
func (c *LMStudioClient) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
