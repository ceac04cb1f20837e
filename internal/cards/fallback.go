package cards

import (
	"sort"

	"github.com/jonathan/mentor-match/internal/types"
)

const (
	maxFallbackCautions = 3

	// cautionGapPrefix marks a user topic the mentor does not cover.
	cautionGapPrefix = "보완: "
)

// FallbackCard builds a deterministic card purely from the validator
// payload. It is used whenever every generator attempt fails, so callers
// always receive a well-formed card per mentor.
func FallbackCard(validator types.ValidatorPayload) types.Card {
	overlap := make([]string, 0, maxOverlapTags)
	for _, tag := range validator.Overlap.Topics {
		if len(overlap) == maxOverlapTags {
			break
		}
		overlap = append(overlap, tag)
	}
	for _, tag := range validator.Overlap.Stacks {
		if len(overlap) == maxOverlapTags {
			break
		}
		overlap = append(overlap, tag)
	}

	covered := make(map[string]bool, len(validator.MentorTopics))
	for _, topic := range validator.MentorTopics {
		covered[topic] = true
	}
	missing := []string{}
	for _, topic := range validator.UserTopics {
		if !covered[topic] {
			missing = append(missing, topic)
		}
	}
	sort.Strings(missing)

	cautions := []string{}
	for _, topic := range missing {
		if len(cautions) == maxFallbackCautions {
			break
		}
		cautions = append(cautions, cautionGapPrefix+topic)
	}

	return types.Card{
		MentorID:      validator.MentorID,
		OneLineReason: genericReason,
		OverlapTags:   overlap,
		CautionPoints: cautions,
	}
}
