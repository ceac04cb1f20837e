// Package analyzer extracts the five most essential keywords from a
// developer portfolio through the generator, with PII masking applied to
// the input by default.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/mentor-match/internal/llm"
	"github.com/jonathan/mentor-match/internal/pii"
	"github.com/jonathan/mentor-match/internal/prompts"
)

const (
	// KeywordCount is the exact number of keywords the generator must return.
	KeywordCount = 5

	// maxPortfolioRunes caps the text embedded into the prompt.
	maxPortfolioRunes = 35000

	// DefaultTargetRole is used when the caller does not name a role.
	DefaultTargetRole = "Backend"
)

// Options tunes a keyword extraction request.
type Options struct {
	TargetRole string
	// DisableMasking skips PII redaction. Masking is on by default.
	DisableMasking bool
}

type keywordsResult struct {
	Keywords []string `json:"keywords"`
}

// ExtractKeywords asks the generator for exactly five portfolio keywords
// and validates the response shape before returning it.
func ExtractKeywords(ctx context.Context, client llm.Client, portfolioText string, opts Options) ([]string, error) {
	text := strings.TrimSpace(portfolioText)
	if text == "" {
		return nil, errors.New("portfolio text is empty")
	}
	if !opts.DisableMasking {
		text = pii.Mask(text)
	}
	if runes := []rune(text); len(runes) > maxPortfolioRunes {
		text = string(runes[:maxPortfolioRunes])
	}

	role := opts.TargetRole
	if role == "" {
		role = DefaultTargetRole
	}

	template := prompts.MustGet("analyzer.json", "extract-keywords")
	prompt := prompts.Format(template, map[string]string{
		"TargetRole":    role,
		"PortfolioText": text,
	})

	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction failed: %w", err)
	}
	object, err := llm.ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction returned no JSON object: %w", err)
	}

	var result keywordsResult
	if err := json.Unmarshal([]byte(object), &result); err != nil {
		return nil, fmt.Errorf("failed to decode keyword response: %w", err)
	}
	if len(result.Keywords) != KeywordCount {
		return nil, fmt.Errorf("expected %d keywords, got %d", KeywordCount, len(result.Keywords))
	}
	for i, keyword := range result.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return nil, fmt.Errorf("keyword %d is blank", i)
		}
	}
	return result.Keywords, nil
}
