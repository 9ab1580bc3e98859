package cache

import "context"

// Store is the prompt-keyed response cache interface.
type Store interface {
	// Get returns the cached response for a prompt, or an error on miss.
	Get(ctx context.Context, prompt string) (string, error)

	// Set stores a response under the prompt key.
	Set(ctx context.Context, prompt, value string) error

	// Close releases cache resources.
	Close() error
}
