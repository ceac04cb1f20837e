package cards

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/mentor-match/internal/types"
)

const (
	maxReasonRunes = 35
	maxOverlapTags = 6

	// genericReason replaces an empty or whitespace-only reason so a card
	// never renders with a blank headline.
	genericReason = "겹치는 태그 기반 추천"
)

// cardSchema is the structural contract for generator output. Semantic
// checks (identity, factual containment) run after the schema pass.
const cardSchema = `{
	"type": "object",
	"required": ["mentor_id", "one_line_reason", "overlap_tags", "caution_points"],
	"properties": {
		"overlap_tags": {"type": "array"},
		"caution_points": {"type": "array"}
	}
}`

var cardSchemaLoader = gojsonschema.NewStringLoader(cardSchema)

// rawCard mirrors generator output before normalization. mentor_id and the
// list members stay loosely typed because the generator may emit numbers
// where strings are expected.
type rawCard struct {
	MentorID      any    `json:"mentor_id"`
	OneLineReason string `json:"one_line_reason"`
	OverlapTags   []any  `json:"overlap_tags"`
	CautionPoints []any  `json:"caution_points"`
}

// ValidateCard checks one decoded generator object against its validator
// payload and returns the normalized card. The returned card only ever
// contains facts present in the payload.
func ValidateCard(raw []byte, validator types.ValidatorPayload) (types.Card, error) {
	result, err := gojsonschema.Validate(cardSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return types.Card{}, &ValidationError{Message: err.Error()}
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return types.Card{}, &ValidationError{Message: strings.Join(messages, "; ")}
	}

	var card rawCard
	if err := json.Unmarshal(raw, &card); err != nil {
		return types.Card{}, &ValidationError{Message: err.Error()}
	}

	want := strconv.Itoa(validator.MentorID)
	if got := stringifyID(card.MentorID); got != want {
		return types.Card{}, &ValidationError{
			Field:   "mentor_id",
			Message: "got " + got + ", want " + want,
		}
	}

	return types.Card{
		MentorID:      validator.MentorID,
		OneLineReason: normalizeReason(card.OneLineReason),
		OverlapTags:   filterOverlap(card.OverlapTags, validator.Overlap),
		CautionPoints: filterCautions(card.CautionPoints),
	}, nil
}

// stringifyID renders mentor_id for string-equality comparison regardless of
// whether the generator emitted a string or a JSON number.
func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// normalizeReason collapses line breaks, trims, truncates to the display
// limit, and substitutes the generic reason when nothing is left.
func normalizeReason(reason string) string {
	replacer := strings.NewReplacer("\r", " ", "\n", " ")
	reason = strings.TrimSpace(replacer.Replace(reason))
	if runes := []rune(reason); len(runes) > maxReasonRunes {
		reason = string(runes[:maxReasonRunes])
	}
	if reason == "" {
		return genericReason
	}
	return reason
}

// filterOverlap keeps only tags that truly appear in the validator overlap,
// preserving generator order, capped at the display limit.
func filterOverlap(tags []any, overlap types.Overlap) []string {
	allowed := make(map[string]bool, len(overlap.Topics)+len(overlap.Stacks))
	for _, tag := range overlap.Topics {
		allowed[tag] = true
	}
	for _, tag := range overlap.Stacks {
		allowed[tag] = true
	}

	kept := []string{}
	for _, tag := range tags {
		s, ok := tag.(string)
		if !ok || !allowed[s] {
			continue
		}
		kept = append(kept, s)
		if len(kept) == maxOverlapTags {
			break
		}
	}
	return kept
}

// filterCautions drops non-string and blank entries.
func filterCautions(points []any) []string {
	kept := []string{}
	for _, point := range points {
		s, ok := point.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
