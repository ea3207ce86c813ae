// Package providers exposes constructors for the bundled embedding
// providers.
package providers

import (
	"context"

	"github.com/embedcache/embedcache/providers/gemini"
	"github.com/embedcache/embedcache/providers/openai"
	"github.com/embedcache/embedcache/types"
)

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config openai.Config) (types.Embedder, error) {
	return openai.NewProvider(config)
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, config gemini.Config) (types.Embedder, error) {
	return gemini.NewProvider(ctx, config)
}
