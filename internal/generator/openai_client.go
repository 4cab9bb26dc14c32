package generator

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

// OpenAILLMClient implements deps.LLMClient against any OpenAI-compatible
// chat-completions endpoint (Groq, OpenRouter, OpenAI itself).
type OpenAILLMClient struct {
	client openai.Client
	model  string
}

// NewOpenAILLMClient creates a client for the given endpoint, key, and model.
// baseURL may be empty to use the SDK default.
func NewOpenAILLMClient(baseURL, apiKey, model string) (*OpenAILLMClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("api key is empty")
	}

	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(apiKey)),
		openaioption.WithMaxRetries(0),
	}
	if normalized := strings.TrimRight(strings.TrimSpace(baseURL), "/"); normalized != "" {
		opts = append(opts, openaioption.WithBaseURL(normalized))
	}

	return &OpenAILLMClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// GenerateContent sends a system instruction plus user prompt and returns the
// assistant message text.
func (c *OpenAILLMClient) GenerateContent(ctx context.Context, systemPrompt, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(float64(temperature)),
		MaxTokens:   openai.Int(int64(maxOutputTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
