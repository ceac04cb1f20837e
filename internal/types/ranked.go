package types

// RankedCandidate is one mentor with its score breakdown and the literal
// overlap lists the ratios were computed from. Numeric fields are rounded
// to six decimals for stable serialization.
type RankedCandidate struct {
	MentorID       int      `json:"mentor_id"`
	MentorName     string   `json:"mentor_name"`
	Company        string   `json:"company"`
	Price          int      `json:"price"`
	MentoringCount int      `json:"mentoring_count"`
	TotalScore     float64  `json:"total_score"`
	TopicMatch     float64  `json:"topicMatch"`
	StackMatch     float64  `json:"stackMatch"`
	Quality        float64  `json:"quality"`
	OverlapTopics  []string `json:"overlap_topics"`
	OverlapStacks  []string `json:"overlap_stacks"`
}

// SimplifiedCandidate is the trimmed view of a RankedCandidate returned by
// the HTTP recommend endpoint.
type SimplifiedCandidate struct {
	MentorID      int      `json:"mentor_id"`
	MentorName    string   `json:"mentor_name"`
	Company       string   `json:"company"`
	Price         int      `json:"price"`
	TotalScore    float64  `json:"total_score"`
	OverlapTopics []string `json:"overlap_topics"`
	OverlapStacks []string `json:"overlap_stacks"`
}
