// Package gemini counts tokens of crawled content with the Gemini local
// tokenizer, so crawl summaries can estimate how much context a site needs.
package gemini

import (
	"context"

	"github.com/fwojciec/doccrawl"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// DefaultModel is the model whose tokenizer is used when none is given.
const DefaultModel = "gemini-2.0-flash"

var _ doccrawl.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally without calling the Gemini API.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a TokenCounter for model. The tokenizer model
// file is downloaded and cached on first use.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, doccrawl.Errorf(doccrawl.EINVALID, "tokenizer for %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens implements doccrawl.TokenCounter.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
