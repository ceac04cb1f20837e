package mentors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/mentor-match/internal/db"
)

func TestBuild_EmptyRows(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.Nil(t, Build([]db.MentorRow{}))
}

func TestBuild_CanonicalizesTagsAndQuality(t *testing.T) {
	rows := []db.MentorRow{
		{ID: 1, Name: "kim", Company: "acme", Price: 50000, MentoringCount: 100,
			TechStack: "Spring Boot, Redis", KeywordNames: "캐싱,인덱스 튜닝"},
		{ID: 2, Name: "lee", Company: "beta", Price: 30000, MentoringCount: 0,
			TechStack: "PostgreSQL", KeywordNames: ""},
	}

	built := Build(rows)
	require.Len(t, built, 2)

	assert.True(t, built[0].Stacks["spring_boot"])
	assert.True(t, built[0].Stacks["redis"])
	assert.True(t, built[0].Topics["cache_strategy"])
	assert.True(t, built[0].Topics["index_tuning"])
	assert.Equal(t, 1.0, built[0].Quality, "Cohort max gets full quality")

	assert.True(t, built[1].Stacks["postgresql"])
	assert.Empty(t, built[1].Topics)
	assert.Equal(t, 0.0, built[1].Quality)
}

func TestBuild_ZeroEngagementCohortGetsNeutralQuality(t *testing.T) {
	rows := []db.MentorRow{
		{ID: 1, MentoringCount: 0},
		{ID: 2, MentoringCount: 0},
	}

	built := Build(rows)
	require.Len(t, built, 2)
	assert.Equal(t, 0.5, built[0].Quality)
	assert.Equal(t, 0.5, built[1].Quality)
}

func TestBuild_UnmatchedTagsDroppedSilently(t *testing.T) {
	rows := []db.MentorRow{
		{ID: 1, MentoringCount: 1, TechStack: "COBOL, Fortran", KeywordNames: "메인프레임"},
	}

	built := Build(rows)
	require.Len(t, built, 1)
	assert.Empty(t, built[0].Stacks)
	assert.Empty(t, built[0].Topics)
}
