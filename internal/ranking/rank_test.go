package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/mentor-match/internal/types"
)

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, tag := range tags {
		m[tag] = true
	}
	return m
}

func TestQuality_NeutralWhenCohortHasNoEngagement(t *testing.T) {
	assert.Equal(t, 0.5, Quality(0, 0))
	assert.Equal(t, 0.5, Quality(10, 0))
	assert.Equal(t, 0.5, Quality(10, -3))
}

func TestQuality_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, Quality(0, 100))
	assert.Equal(t, 1.0, Quality(100, 100))
	assert.Equal(t, 0.0, Quality(-5, 100), "Negative counts are treated as zero")

	mid := Quality(10, 100)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)
}

func TestQuality_LogDamping(t *testing.T) {
	// With a linear scale 10/1000 would be 0.01; log damping keeps it
	// meaningfully above that.
	assert.Greater(t, Quality(10, 1000), 0.3)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.333333, Round(1.0/3.0))
	assert.Equal(t, 0.666667, Round(2.0/3.0))
}

func TestRank_OrdersByTotalScore(t *testing.T) {
	mentors := []types.Mentor{
		{ID: 1, Name: "a", Topics: set("index_tuning"), Stacks: set(), Quality: 0.2},
		{ID: 2, Name: "b", Topics: set("index_tuning", "cache_strategy"), Stacks: set("redis"), Quality: 0.8},
	}

	ranked := Rank(set("index_tuning", "cache_strategy"), set("redis"), mentors, 10, DefaultWeights())

	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].MentorID)
	assert.Equal(t, 1, ranked[1].MentorID)
	assert.Greater(t, ranked[0].TotalScore, ranked[1].TotalScore)
}

func TestRank_TieBrokenByQualityThenID(t *testing.T) {
	// Mentors 7 and 3 have identical overlap; 7 wins on quality. Mentors 3
	// and 9 are fully identical, so the lower id comes first.
	mentors := []types.Mentor{
		{ID: 9, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.4},
		{ID: 7, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.9},
		{ID: 3, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.4},
	}

	ranked := Rank(set("cache_strategy"), set(), mentors, 10, DefaultWeights())

	require.Len(t, ranked, 3)
	assert.Equal(t, 7, ranked[0].MentorID)
	assert.Equal(t, 3, ranked[1].MentorID)
	assert.Equal(t, 9, ranked[2].MentorID)
}

func TestRank_OrderIndependentOfInputOrder(t *testing.T) {
	forward := []types.Mentor{
		{ID: 1, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.5},
		{ID: 2, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.5},
		{ID: 3, Topics: set("index_tuning"), Stacks: set(), Quality: 0.5},
	}
	reversed := []types.Mentor{forward[2], forward[1], forward[0]}

	user := set("cache_strategy")
	a := Rank(user, set(), forward, 10, DefaultWeights())
	b := Rank(user, set(), reversed, 10, DefaultWeights())
	assert.Equal(t, a, b)
}

func TestRank_TruncatesToN(t *testing.T) {
	mentors := make([]types.Mentor, 0, 8)
	for i := 1; i <= 8; i++ {
		mentors = append(mentors, types.Mentor{ID: i, Topics: set("cache_strategy"), Stacks: set(), Quality: 0.5})
	}

	ranked := Rank(set("cache_strategy"), set(), mentors, 3, DefaultWeights())
	assert.Len(t, ranked, 3)
}

func TestRank_EmptyUserTagsScoreOnQualityOnly(t *testing.T) {
	mentors := []types.Mentor{
		{ID: 1, Topics: set("cache_strategy"), Stacks: set("redis"), Quality: 0.25},
	}

	ranked := Rank(set(), set(), mentors, 10, DefaultWeights())

	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].TopicMatch)
	assert.Equal(t, 0.0, ranked[0].StackMatch)
	assert.Equal(t, 0.05, ranked[0].TotalScore)
}

func TestRank_EmptyMentorPool(t *testing.T) {
	ranked := Rank(set("cache_strategy"), set(), nil, 5, DefaultWeights())
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestRank_OverlapListsSortedAndNonNil(t *testing.T) {
	mentors := []types.Mentor{
		{ID: 1, Topics: set("index_tuning", "cache_strategy"), Stacks: set(), Quality: 0.5},
		{ID: 2, Topics: set(), Stacks: set(), Quality: 0.5},
	}

	ranked := Rank(set("index_tuning", "cache_strategy"), set(), mentors, 10, DefaultWeights())

	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"cache_strategy", "index_tuning"}, ranked[0].OverlapTopics)
	assert.NotNil(t, ranked[1].OverlapTopics)
	assert.NotNil(t, ranked[1].OverlapStacks)
}

func TestRank_WeightsNotRenormalized(t *testing.T) {
	mentors := []types.Mentor{
		{ID: 1, Topics: set("cache_strategy"), Stacks: set(), Quality: 1.0},
	}

	// Weights summing to 2 pass through untouched.
	ranked := Rank(set("cache_strategy"), set(), mentors, 10, Weights{Topic: 1, Stack: 0.5, Quality: 0.5})
	require.Len(t, ranked, 1)
	assert.Equal(t, 1.5, ranked[0].TotalScore)
}

func TestRank_PerfectMatchScenario(t *testing.T) {
	// Full topic and stack overlap at cohort-max engagement yields 1.0
	// across the board.
	mentorA := types.Mentor{
		ID:      1,
		Topics:  set("cache_strategy", "index_tuning"),
		Stacks:  set("redis"),
		Quality: Quality(50, 50),
	}

	ranked := Rank(set("cache_strategy"), set("redis"), []types.Mentor{mentorA}, 5, DefaultWeights())

	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].TopicMatch)
	assert.Equal(t, 1.0, ranked[0].StackMatch)
	assert.Equal(t, 1.0, ranked[0].Quality)
	assert.Equal(t, 1.0, ranked[0].TotalScore)
}

func TestSimplify(t *testing.T) {
	ranked := []types.RankedCandidate{
		{MentorID: 4, MentorName: "kim", Company: "acme", Price: 50000, TotalScore: 0.7,
			OverlapTopics: []string{"cache_strategy"}, OverlapStacks: []string{}},
	}

	simplified := Simplify(ranked)
	require.Len(t, simplified, 1)
	assert.Equal(t, 4, simplified[0].MentorID)
	assert.Equal(t, 0.7, simplified[0].TotalScore)
	assert.Equal(t, []string{"cache_strategy"}, simplified[0].OverlapTopics)
}
