// Package mentors assembles Mentor models from raw data-source rows.
package mentors

import (
	"github.com/jonathan/mentor-match/internal/canonical"
	"github.com/jonathan/mentor-match/internal/db"
	"github.com/jonathan/mentor-match/internal/ranking"
	"github.com/jonathan/mentor-match/internal/types"
)

// Build canonicalizes each row's tech stack and keyword names and attaches
// the cohort-normalized quality score. The cohort is exactly the given row
// set; models are rebuilt fresh on every request and never mutated after.
func Build(rows []db.MentorRow) []types.Mentor {
	if len(rows) == 0 {
		return nil
	}

	cohortMax := 0
	for _, row := range rows {
		if row.MentoringCount > cohortMax {
			cohortMax = row.MentoringCount
		}
	}

	built := make([]types.Mentor, 0, len(rows))
	for _, row := range rows {
		stacks, topics := canonical.CanonicalizeMentorTags(row.TechStack, row.KeywordNames)
		built = append(built, types.Mentor{
			ID:             row.ID,
			Name:           row.Name,
			Company:        row.Company,
			Price:          row.Price,
			MentoringCount: row.MentoringCount,
			Stacks:         stacks,
			Topics:         topics,
			Quality:        ranking.Quality(row.MentoringCount, cohortMax),
		})
	}
	return built
}
