package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"slidecraft/backend/internal/generator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

const (
	// GenerateTimeout is the maximum time allowed for one generation
	GenerateTimeout = 120 * time.Second
	// MinTopicLength is the minimum topic length after trimming
	MinTopicLength = 3
	// MinAPIKeyLength is the minimum accepted API key length
	MinAPIKeyLength = 10
)

type GenerateRequest struct {
	Topic    string   `json:"topic" binding:"required"`
	Sections []string `json:"sections" binding:"required,min=3,max=10"`
	APIKey   string   `json:"api_key"`
	Model    string   `json:"model"`
}

var (
	deckGenerator *generator.Generator
	generatorMu   sync.RWMutex
)

// InitGenerator initializes the deck generator from environment config
func InitGenerator() error {
	gen, err := generator.New(generator.Config{
		APIKey:        os.Getenv("LLM_API_KEY"),
		Model:         os.Getenv("LLM_MODEL"),
		BaseURL:       os.Getenv("LLM_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		ImageEndpoint: os.Getenv("IMAGE_ENDPOINT"),
		OutputDir:     os.Getenv("OUTPUT_DIR"),
	})
	if err != nil {
		return err
	}

	generatorMu.Lock()
	deckGenerator = gen
	generatorMu.Unlock()
	return nil
}

// SetGenerator swaps the generator; used by tests
func SetGenerator(gen *generator.Generator) {
	generatorMu.Lock()
	deckGenerator = gen
	generatorMu.Unlock()
}

// inFlight tracks clients with a generation in progress so one session
// cannot run two generations concurrently
var inFlight sync.Map

func HandleGenerate(c *gin.Context) {
	startTime := time.Now()

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Sections" && (fe.Tag() == "min" || fe.Tag() == "max") {
					c.JSON(http.StatusBadRequest, gin.H{
						"error": "Between 3 and 10 sections are required",
						"code":  "INVALID_SECTIONS",
					})
					return
				}
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: topic and sections are required",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	// Normalize Unicode to NFC form before validation so lookalike
	// characters cannot slip past the length checks
	req.Topic = strings.TrimSpace(norm.NFC.String(req.Topic))
	for i, s := range req.Sections {
		req.Sections[i] = strings.TrimSpace(norm.NFC.String(s))
	}

	if utf8.RuneCountInString(req.Topic) < MinTopicLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Topic must be at least 3 characters",
			"code":  "INVALID_TOPIC",
		})
		return
	}
	for _, s := range req.Sections {
		if s == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Section titles must not be blank",
				"code":  "INVALID_SECTIONS",
			})
			return
		}
	}
	if req.APIKey != "" && len(req.APIKey) < MinAPIKeyLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "API key is too short",
			"code":  "INVALID_API_KEY",
		})
		return
	}

	generatorMu.RLock()
	gen := deckGenerator
	generatorMu.RUnlock()

	if gen == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Generation service is not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}

	// One in-flight generation per client
	clientID := generateClientID(c)
	if _, busy := inFlight.LoadOrStore(clientID, true); busy {
		c.JSON(http.StatusConflict, gin.H{
			"error": "A generation is already in progress for this session",
			"code":  "GENERATION_IN_PROGRESS",
		})
		return
	}
	defer inFlight.Delete(clientID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), GenerateTimeout)
	defer cancel()

	meta, err := gen.CreatePresentation(ctx, generator.GenerateRequest{
		Topic:    req.Topic,
		Sections: req.Sections,
		APIKey:   req.APIKey,
		Model:    req.Model,
	})
	duration := time.Since(startTime)

	if err != nil {
		log.Printf("[PERF] Generation failed after %v: %v", duration, err)

		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Generation timed out. Please try again.",
				"code":  "TIMEOUT",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate presentation. Please try again.",
			"code":  "GENERATION_FAILED",
		})
		return
	}

	StorePresentation(meta)
	log.Printf("[PERF] Generated %q in %v (%d slides, %d bytes)", req.Topic, duration, meta.SlideCount, meta.FileSize)

	c.JSON(http.StatusOK, meta.ToResponse())
}

// generateClientID identifies a client session for the in-flight guard
func generateClientID(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "anonymous"
	}
	return "client_" + ip
}
