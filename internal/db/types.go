package db

// MentorRow is one raw row from the mentor pool query, before any
// canonicalization. TechStack is a free-text field; KeywordNames is a
// comma-joined aggregation of the mentor's keyword names.
type MentorRow struct {
	ID             int
	Name           string
	Company        string
	Price          int
	MentoringCount int
	TechStack      string
	KeywordNames   string
}
