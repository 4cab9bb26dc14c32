// Package generator implements the content-to-deck pipeline: build a prompt,
// ask the LLM for deck JSON, fall back to a templated deck on any failure,
// and render the result to a pptx file.
package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slidecraft/backend/internal/generator/deps"
	"slidecraft/backend/internal/generator/prompt"
	"slidecraft/backend/internal/generator/response"
	"slidecraft/backend/internal/model"
	"slidecraft/backend/internal/render"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when neither the request nor the environment
	// names one
	DefaultModel = "llama-3.3-70b-versatile"
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// ContentTemperature and ContentMaxTokens are fixed for deck generation
	ContentTemperature = 0.7
	ContentMaxTokens   = 4000
)

// Config holds environment-level defaults; request fields override per call
type Config struct {
	APIKey        string
	Model         string
	BaseURL       string
	GeminiAPIKey  string
	ImageEndpoint string
	OutputDir     string
}

// GenerateRequest is one presentation request from the form
type GenerateRequest struct {
	Topic    string
	Sections []string
	APIKey   string
	Model    string
}

// Generator runs the content-to-deck pipeline
type Generator struct {
	cfg           Config
	promptBuilder *prompt.Builder
	renderer      *render.Renderer
}

// New creates a Generator. The output directory is created eagerly so a
// misconfigured path fails at startup instead of on first request.
func New(cfg Config) (*Generator, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(os.TempDir(), "slidecraft")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	var images deps.ImageFetcher
	if cfg.ImageEndpoint != "" {
		images = render.NewStockImageFetcher(cfg.ImageEndpoint)
	}

	return &Generator{
		cfg:           cfg,
		promptBuilder: prompt.NewBuilder(),
		renderer:      render.NewRenderer(images),
	}, nil
}

// OutputDir returns the directory generated files are written to
func (g *Generator) OutputDir() string {
	return g.cfg.OutputDir
}

// CreatePresentation runs the full pipeline for one request and writes the
// pptx file. Content-stage failures never surface; only rendering or disk
// errors do.
func (g *Generator) CreatePresentation(ctx context.Context, req GenerateRequest) (*model.PresentationMeta, error) {
	client, err := g.clientFor(ctx, req)
	if err != nil {
		log.Printf("[WARN] LLM client unavailable, using fallback content: %v", err)
		client = nil
	}

	deck := g.GenerateDeck(ctx, client, req.Topic, req.Sections)

	p := g.renderer.Build(ctx, deck)
	data, err := g.renderer.Bytes(p)
	if err != nil {
		return nil, fmt.Errorf("failed to render presentation: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("professional_%s_%s.pptx", sanitizeTopic(req.Topic), now.Format("20060102_150405"))
	path := filepath.Join(g.cfg.OutputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write presentation: %w", err)
	}

	return &model.PresentationMeta{
		ID:         uuid.New().String(),
		Topic:      req.Topic,
		Filename:   filename,
		Path:       path,
		SlideCount: p.GetSlideCount(),
		FileSize:   int64(len(data)),
		CreatedAt:  now.UTC().Format(time.RFC3339),
	}, nil
}

// GenerateDeck asks the LLM for deck JSON and parses it. Any failure - the
// call itself, extraction, parsing, or an empty slides list - substitutes
// the deterministic fallback deck. Never errors.
func (g *Generator) GenerateDeck(ctx context.Context, client deps.LLMClient, topic string, sections []string) *model.Deck {
	if client == nil {
		return BuildFallbackDeck(topic, sections)
	}

	systemPrompt := g.promptBuilder.BuildSystemPrompt()
	userPrompt := g.promptBuilder.BuildDeckPrompt(topic, sections)

	start := time.Now()
	raw, err := client.GenerateContent(ctx, systemPrompt, userPrompt, ContentTemperature, ContentMaxTokens)
	if err != nil {
		log.Printf("[FALLBACK] Content generation failed after %v: %v", time.Since(start), err)
		return BuildFallbackDeck(topic, sections)
	}

	deck, err := response.Parse(raw)
	if err != nil {
		log.Printf("[FALLBACK] Failed to parse model response: %v", err)
		return BuildFallbackDeck(topic, sections)
	}

	log.Printf("[PERF] Deck content generated in %v (%d slides)", time.Since(start), len(deck.Slides))
	return deck
}

// clientFor builds the LLM client for one request. Model names prefixed
// "gemini" go to the Gemini API; everything else to the OpenAI-compatible
// endpoint.
func (g *Generator) clientFor(ctx context.Context, req GenerateRequest) (deps.LLMClient, error) {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = g.cfg.APIKey
	}
	modelName := req.Model
	if modelName == "" {
		modelName = g.cfg.Model
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	if strings.HasPrefix(strings.ToLower(modelName), "gemini") {
		geminiKey := g.cfg.GeminiAPIKey
		if geminiKey == "" {
			geminiKey = apiKey
		}
		if geminiKey == "" {
			return nil, fmt.Errorf("no API key for Gemini model %q", modelName)
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: geminiKey})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		return NewGeminiLLMClient(client, modelName), nil
	}

	return NewOpenAILLMClient(g.cfg.BaseURL, apiKey, modelName)
}

// sanitizeTopic makes the topic safe for use in a filename
func sanitizeTopic(topic string) string {
	var sb strings.Builder
	for _, r := range topic {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "presentation"
	}
	return sb.String()
}
