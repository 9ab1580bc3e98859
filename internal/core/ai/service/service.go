package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"plant-advisor/internal/core/ai/cache"
	"plant-advisor/internal/core/ai/provider"
	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// Service coordinates provider calls with caching and a minimum request interval.
type Service struct {
	config      *config.Config
	provider    provider.Provider
	store       cache.Store
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService creates the AI service. store may be nil when caching is disabled.
func NewService(cfg *config.Config, prov provider.Provider, store cache.Store) *Service {
	return &Service{
		config:   cfg,
		provider: prov,
		store:    store,
	}
}

// ProcessRequest generates a response for the prompt, consulting the cache first.
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	if err := s.checkRequestInterval(); err != nil {
		return "", err
	}

	// canonicalize whitespace so equivalent prompts share a cache key
	prompt = strings.TrimSpace(prompt)
	prompt = strings.Join(strings.Fields(prompt), " ")

	if s.config.Cache.Enabled && s.store != nil {
		if val, err := s.store.Get(ctx, prompt); err == nil && val != "" {
			return val, nil
		}
	}

	resp, err := s.provider.Generate(ctx, &provider.Request{
		Messages: []provider.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		TopP:        0.9,
	})
	if err != nil {
		return "", err
	}

	common.LogInfo("model response received",
		zap.String("model", s.provider.GetModel()),
		zap.Int("content_length", len(resp.Content)),
	)

	if s.config.Cache.Enabled && s.store != nil {
		_ = s.store.Set(ctx, prompt, resp.Content)
	}

	return resp.Content, nil
}

// checkRequestInterval enforces a minimum spacing between provider calls.
func (s *Service) checkRequestInterval() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.AI.MinInterval > 0 && !s.lastRequest.IsZero() &&
		now.Sub(s.lastRequest) < s.config.AI.MinInterval {
		return errors.New("request rate limit exceeded")
	}

	s.lastRequest = now
	return nil
}
