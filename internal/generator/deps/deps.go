package deps

import (
	"context"
)

// LLMClient abstracts chat-completion calls for deck content generation
type LLMClient interface {
	GenerateContent(ctx context.Context, systemPrompt, prompt string, temperature float32, maxOutputTokens int32) (string, error)
}

// ImageFetcher abstracts stock-photo retrieval for content slides
type ImageFetcher interface {
	Fetch(ctx context.Context, slideIndex int) ([]byte, string, error)
}
