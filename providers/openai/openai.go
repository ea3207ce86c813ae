package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/tiktoken-go/tokenizer"
)

const (
	DefaultModel = openai.EmbeddingModelTextEmbedding3Small

	// maxInputTokens is the input limit shared by OpenAI's embedding
	// models. Inputs are measured locally with tiktoken before the
	// request is sent.
	maxInputTokens = 8191
)

// Provider uses OpenAI's API to embed text.
type Provider struct {
	client *openai.Client
	model  string
	codec  tokenizer.Codec
}

// Config provides configuration options for the OpenAI embedding provider.
type Config struct {
	APIKey  string
	BaseURL string
	OrgID   string
	Model   string
}

// NewProvider creates an embedding provider for OpenAI.
func NewProvider(config Config) (*Provider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("OpenAI API key is required")
		}
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.OrgID != "" {
		opts = append(opts, option.WithOrganization(config.OrgID))
	}

	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}

	client := openai.NewClient(opts...)
	return &Provider{client: &client, model: model, codec: codec}, nil
}

// MaxInputTokens returns the token limit enforced per input text.
func (p *Provider) MaxInputTokens() int {
	return maxInputTokens
}

// checkInputLength counts tokens locally and rejects over-limit inputs
// before spending an API call on them.
func (p *Provider) checkInputLength(text string) error {
	ids, _, err := p.codec.Encode(text)
	if err != nil {
		return fmt.Errorf("failed to tokenize input: %w", err)
	}
	if len(ids) > maxInputTokens {
		return fmt.Errorf("input of %d tokens exceeds model limit of %d", len(ids), maxInputTokens)
	}
	return nil
}

// EmbedText sends a single embedding request to OpenAI.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vecs, err := p.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedTexts sends one batched embedding request for all texts.
func (p *Provider) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for _, text := range texts {
		if err := p.checkInputLength(text); err != nil {
			return nil, err
		}
	}

	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(p.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("OpenAI returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	// Responses may arrive out of order; Index maps them back.
	vecs := make([][]float32, len(texts))
	for _, data := range resp.Data {
		embedding64 := data.Embedding
		embedding := make([]float32, len(embedding64))
		for i, v := range embedding64 {
			embedding[i] = float32(v)
		}
		idx := int(data.Index)
		if idx < 0 || idx >= len(vecs) {
			return nil, fmt.Errorf("OpenAI returned embedding with index %d out of range", idx)
		}
		vecs[idx] = embedding
	}
	return vecs, nil
}

func (p *Provider) Close() {}
