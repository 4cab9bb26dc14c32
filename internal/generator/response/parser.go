// Package response extracts the deck JSON payload from raw LLM output.
// Models wrap JSON in code fences or surround it with prose, so extraction
// is best-effort: strip fences, slice the outermost braces, and repair
// malformed JSON before giving up.
package response

import (
	"encoding/json"
	"errors"
	"strings"

	"slidecraft/backend/internal/model"

	"github.com/kaptinlin/jsonrepair"
)

// ErrNoSlides means the payload parsed but had no usable slides key.
var ErrNoSlides = errors.New("response contains no slides")

// Parse extracts and parses the deck JSON from raw model output.
func Parse(text string) (*model.Deck, error) {
	payload := ExtractJSON(text)
	if payload == "" {
		return nil, errors.New("no JSON object found in response")
	}

	var deck model.Deck
	if err := json.Unmarshal([]byte(payload), &deck); err != nil {
		// Models occasionally emit trailing commas or unquoted keys;
		// try one repair pass before failing.
		repaired, repairErr := jsonrepair.JSONRepair(payload)
		if repairErr != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(repaired), &deck); err != nil {
			return nil, err
		}
	}

	if len(deck.Slides) == 0 {
		return nil, ErrNoSlides
	}
	return &deck, nil
}

// ExtractJSON strips a leading code fence (labeled or not) and returns the
// substring between the first '{' and the last '}'. Returns "" when no
// brace pair exists. Known limit: literal braces inside string values can
// defeat the outer-brace heuristic.
func ExtractJSON(text string) string {
	content := strings.TrimSpace(text)

	if strings.HasPrefix(content, "```json") {
		content = afterFence(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = afterFence(content, "```")
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}

// afterFence returns the text between an opening fence marker and the next
// closing fence (or the rest of the string when unclosed).
func afterFence(content, marker string) string {
	content = strings.TrimPrefix(content, marker)
	if idx := strings.Index(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}
