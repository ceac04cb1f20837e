package types

// Overlap holds the true tag intersections between user and mentor.
type Overlap struct {
	Topics []string `json:"topics"`
	Stacks []string `json:"stacks"`
}

// ScoreBreakdown mirrors the scoring terms of a RankedCandidate inside a
// ValidatorPayload.
type ScoreBreakdown struct {
	TopicMatch float64 `json:"topicMatch"`
	StackMatch float64 `json:"stackMatch"`
	Quality    float64 `json:"quality"`
	Total      float64 `json:"total"`
}

// ValidatorPayload is the authoritative fact set for one ranked candidate.
// It bounds what any generated card may claim: produced once per candidate,
// consumed by validation, never regenerated mid-pipeline.
type ValidatorPayload struct {
	MentorID     int            `json:"mentor_id"`
	UserTopics   []string       `json:"U_topics"`
	UserStacks   []string       `json:"U_stacks"`
	MentorTopics []string       `json:"M_topics"`
	MentorStacks []string       `json:"M_stacks"`
	Overlap      Overlap        `json:"overlap"`
	Breakdown    ScoreBreakdown `json:"score_breakdown"`
}

// CardPrompt pairs a mentor id with the generator prompt built for it.
type CardPrompt struct {
	MentorID int    `json:"mentor_id"`
	Prompt   string `json:"prompt_for_llm"`
}

// Card is the final enriched recommendation card. Every element is
// attributable to the candidate's ValidatorPayload.
type Card struct {
	MentorID      int      `json:"mentor_id"`
	OneLineReason string   `json:"one_line_reason"`
	OverlapTags   []string `json:"overlap_tags"`
	CautionPoints []string `json:"caution_points"`
	// Diagnostic carries the last attempt error when the card was
	// synthesized as a fallback. It is not persisted to the cache.
	Diagnostic string `json:"error,omitempty"`
}
