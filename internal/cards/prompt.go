package cards

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/mentor-match/internal/prompts"
	"github.com/jonathan/mentor-match/internal/types"
)

// BuildCardPrompt renders the generator prompt for one validator payload.
// The payload is embedded as its deterministic JSON serialization, so
// identical payloads always produce identical prompts (and therefore
// identical cache fingerprints).
func BuildCardPrompt(payload types.ValidatorPayload) (types.CardPrompt, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return types.CardPrompt{}, fmt.Errorf("failed to encode validator payload: %w", err)
	}

	template := prompts.MustGet("cards.json", "mentor-card")
	return types.CardPrompt{
		MentorID: payload.MentorID,
		Prompt:   prompts.Format(template, map[string]string{"Payload": string(encoded)}),
	}, nil
}

// BuildCardPrompts renders prompts for a payload batch, preserving order.
func BuildCardPrompts(payloads []types.ValidatorPayload) ([]types.CardPrompt, error) {
	out := make([]types.CardPrompt, 0, len(payloads))
	for _, payload := range payloads {
		prompt, err := BuildCardPrompt(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, prompt)
	}
	return out, nil
}
