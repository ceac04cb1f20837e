// Package ranking computes weighted match scores between a user's
// canonical tag sets and each mentor in a cohort, producing a ranked,
// truncated candidate list with a deterministic total order.
package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/mentor-match/internal/types"
)

// Default weights for the scoring terms. They happen to sum to 1 but the
// contract does not require caller overrides to; no renormalization is
// applied.
const (
	defaultTopicWeight   = 0.5
	defaultStackWeight   = 0.3
	defaultQualityWeight = 0.2
)

// scorePrecision is the number of decimals kept on serialized scores.
const scorePrecision = 6

// Weights holds the scoring term weights.
type Weights struct {
	Topic   float64
	Stack   float64
	Quality float64
}

// DefaultWeights returns the standard 0.5/0.3/0.2 weighting.
func DefaultWeights() Weights {
	return Weights{Topic: defaultTopicWeight, Stack: defaultStackWeight, Quality: defaultQualityWeight}
}

// Rank scores every mentor against the user's topic and stack tag sets and
// returns at most n candidates ordered by descending total score, ties
// broken by descending quality, then ascending mentor id. The order never
// depends on input iteration order.
func Rank(userTopics, userStacks map[string]bool, mentors []types.Mentor, n int, weights Weights) []types.RankedCandidate {
	topicDen := float64(max(1, len(userTopics)))
	stackDen := float64(max(1, len(userStacks)))

	candidates := make([]types.RankedCandidate, 0, len(mentors))
	for _, mentor := range mentors {
		overlapTopics := sortedIntersection(userTopics, mentor.Topics)
		overlapStacks := sortedIntersection(userStacks, mentor.Stacks)

		topicMatch := float64(len(overlapTopics)) / topicDen
		stackMatch := float64(len(overlapStacks)) / stackDen
		quality := Clamp01(mentor.Quality)
		total := weights.Topic*topicMatch + weights.Stack*stackMatch + weights.Quality*quality

		candidates = append(candidates, types.RankedCandidate{
			MentorID:       mentor.ID,
			MentorName:     mentor.Name,
			Company:        mentor.Company,
			Price:          mentor.Price,
			MentoringCount: mentor.MentoringCount,
			TotalScore:     Round(total),
			TopicMatch:     Round(topicMatch),
			StackMatch:     Round(stackMatch),
			Quality:        Round(quality),
			OverlapTopics:  overlapTopics,
			OverlapStacks:  overlapStacks,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Quality != b.Quality {
			return a.Quality > b.Quality
		}
		return a.MentorID < b.MentorID
	})

	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// Simplify trims ranked candidates down to the view returned by the HTTP
// recommend endpoint.
func Simplify(candidates []types.RankedCandidate) []types.SimplifiedCandidate {
	simplified := make([]types.SimplifiedCandidate, 0, len(candidates))
	for _, c := range candidates {
		simplified = append(simplified, types.SimplifiedCandidate{
			MentorID:      c.MentorID,
			MentorName:    c.MentorName,
			Company:       c.Company,
			Price:         c.Price,
			TotalScore:    c.TotalScore,
			OverlapTopics: c.OverlapTopics,
			OverlapStacks: c.OverlapStacks,
		})
	}
	return simplified
}

// Round rounds a score to the fixed serialization precision.
func Round(value float64) float64 {
	shift := math.Pow10(scorePrecision)
	return math.Round(value*shift) / shift
}

func sortedIntersection(a, b map[string]bool) []string {
	overlap := []string{}
	for tag := range a {
		if b[tag] {
			overlap = append(overlap, tag)
		}
	}
	sort.Strings(overlap)
	return overlap
}
