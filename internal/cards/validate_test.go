package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/mentor-match/internal/types"
)

func testValidator() types.ValidatorPayload {
	return types.ValidatorPayload{
		MentorID:     12,
		UserTopics:   []string{"cache_strategy", "index_tuning", "throughput_optimization"},
		UserStacks:   []string{"redis", "spring_boot"},
		MentorTopics: []string{"cache_strategy", "index_tuning"},
		MentorStacks: []string{"redis"},
		Overlap: types.Overlap{
			Topics: []string{"cache_strategy", "index_tuning"},
			Stacks: []string{"redis"},
		},
	}
}

func TestValidateCard_AcceptsWellFormedCard(t *testing.T) {
	raw := []byte(`{
		"mentor_id": "12",
		"one_line_reason": "캐시 전략 경험이 풍부한 멘토",
		"overlap_tags": ["cache_strategy", "redis"],
		"caution_points": ["실서비스 배포 경험 확인 필요"]
	}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, 12, card.MentorID)
	assert.Equal(t, "캐시 전략 경험이 풍부한 멘토", card.OneLineReason)
	assert.Equal(t, []string{"cache_strategy", "redis"}, card.OverlapTags)
	assert.Equal(t, []string{"실서비스 배포 경험 확인 필요"}, card.CautionPoints)
	assert.Empty(t, card.Diagnostic)
}

func TestValidateCard_AcceptsNumericMentorID(t *testing.T) {
	raw := []byte(`{"mentor_id": 12, "one_line_reason": "r", "overlap_tags": [], "caution_points": []}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, 12, card.MentorID)
}

func TestValidateCard_RejectsWrongMentorID(t *testing.T) {
	raw := []byte(`{"mentor_id": "99", "one_line_reason": "r", "overlap_tags": [], "caution_points": []}`)

	_, err := ValidateCard(raw, testValidator())
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "mentor_id", vErr.Field)
}

func TestValidateCard_RejectsMissingFields(t *testing.T) {
	raw := []byte(`{"mentor_id": "12", "one_line_reason": "r"}`)

	_, err := ValidateCard(raw, testValidator())
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestValidateCard_RejectsNonArrayTags(t *testing.T) {
	raw := []byte(`{"mentor_id": "12", "one_line_reason": "r", "overlap_tags": "redis", "caution_points": []}`)

	_, err := ValidateCard(raw, testValidator())
	require.Error(t, err)
}

func TestValidateCard_TruncatesLongReason(t *testing.T) {
	long := strings.Repeat("가", 50)
	raw := []byte(`{"mentor_id": "12", "one_line_reason": "` + long + `", "overlap_tags": [], "caution_points": []}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("가", 35), card.OneLineReason)
}

func TestValidateCard_CollapsesLineBreaksInReason(t *testing.T) {
	raw := []byte(`{"mentor_id": "12", "one_line_reason": "첫 줄\n둘째 줄", "overlap_tags": [], "caution_points": []}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, "첫 줄 둘째 줄", card.OneLineReason)
}

func TestValidateCard_BlankReasonGetsGenericReplacement(t *testing.T) {
	raw := []byte(`{"mentor_id": "12", "one_line_reason": "  \n ", "overlap_tags": [], "caution_points": []}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, "겹치는 태그 기반 추천", card.OneLineReason)
}

func TestValidateCard_DropsFabricatedOverlapTags(t *testing.T) {
	raw := []byte(`{
		"mentor_id": "12",
		"one_line_reason": "r",
		"overlap_tags": ["redis", "kubernetes", "cache_strategy", 42],
		"caution_points": []
	}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, []string{"redis", "cache_strategy"}, card.OverlapTags)
}

func TestValidateCard_CapsOverlapTagsAtSix(t *testing.T) {
	validator := testValidator()
	validator.Overlap.Topics = []string{"t1", "t2", "t3", "t4"}
	validator.Overlap.Stacks = []string{"s1", "s2", "s3", "s4"}
	raw := []byte(`{
		"mentor_id": "12",
		"one_line_reason": "r",
		"overlap_tags": ["t1","t2","t3","t4","s1","s2","s3","s4"],
		"caution_points": []
	}`)

	card, err := ValidateCard(raw, validator)
	require.NoError(t, err)
	assert.Len(t, card.OverlapTags, 6)
}

func TestValidateCard_FiltersCautionPoints(t *testing.T) {
	raw := []byte(`{
		"mentor_id": "12",
		"one_line_reason": "r",
		"overlap_tags": [],
		"caution_points": ["유효한 주의점", "", "   ", 7]
	}`)

	card, err := ValidateCard(raw, testValidator())
	require.NoError(t, err)
	assert.Equal(t, []string{"유효한 주의점"}, card.CautionPoints)
}

func TestValidateCard_RejectsNonObjectJSON(t *testing.T) {
	_, err := ValidateCard([]byte(`["not", "an", "object"]`), testValidator())
	require.Error(t, err)
}
