package provider

import (
	"context"
	"time"
)

// Message is one turn of a conversation with the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the provider-independent generation request.
type Request struct {
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
	TopP        float64   `json:"top_p,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
}

// Response is the provider-independent generation response.
type Response struct {
	Content string `json:"content"`
	Usage   struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Provider is the interface implemented by every AI backend.
type Provider interface {
	// Generate produces a model response for the request.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// GetModel returns the model name in use.
	GetModel() string

	// GetTimeout returns the request timeout.
	GetTimeout() time.Duration

	// Close releases provider resources.
	Close() error
}

// Config holds common provider settings.
type Config struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	BaseURL    string
}
