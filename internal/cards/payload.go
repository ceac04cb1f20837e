// Package cards builds validator payloads for top-ranked mentors and runs
// the concurrent, cached enrichment pipeline that turns them into
// generator-written justification cards without letting the generator
// fabricate facts.
package cards

import (
	"fmt"

	"github.com/jonathan/mentor-match/internal/canonical"
	"github.com/jonathan/mentor-match/internal/types"
)

// TopCards is the number of leading ranked candidates that receive
// enrichment cards.
const TopCards = 5

// BuildValidatorPayloads assembles the authoritative fact set for each of
// the leading ranked candidates. The payload is the single source of truth
// the enrichment step may quote from: full user and mentor tag sets, the
// true overlap already computed by ranking, and the score breakdown.
func BuildValidatorPayloads(user types.CanonicalTagSet, ranked []types.RankedCandidate, pool []types.Mentor) ([]types.ValidatorPayload, error) {
	byID := make(map[int]types.Mentor, len(pool))
	for _, m := range pool {
		byID[m.ID] = m
	}

	limit := min(TopCards, len(ranked))
	payloads := make([]types.ValidatorPayload, 0, limit)
	for _, candidate := range ranked[:limit] {
		mentor, ok := byID[candidate.MentorID]
		if !ok {
			return nil, fmt.Errorf("ranked candidate %d has no mentor in the pool", candidate.MentorID)
		}
		payloads = append(payloads, types.ValidatorPayload{
			MentorID:     candidate.MentorID,
			UserTopics:   append([]string{}, user.Topics...),
			UserStacks:   append([]string{}, user.Stacks...),
			MentorTopics: canonical.SortedTags(mentor.Topics),
			MentorStacks: canonical.SortedTags(mentor.Stacks),
			Overlap: types.Overlap{
				Topics: append([]string{}, candidate.OverlapTopics...),
				Stacks: append([]string{}, candidate.OverlapStacks...),
			},
			Breakdown: types.ScoreBreakdown{
				TopicMatch: candidate.TopicMatch,
				StackMatch: candidate.StackMatch,
				Quality:    candidate.Quality,
				Total:      candidate.TotalScore,
			},
		})
	}
	return payloads, nil
}
