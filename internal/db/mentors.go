package db

import (
	"context"
	"fmt"
	"regexp"
)

// identifierRe guards the keyword table name before it is interpolated
// into the query; the table name is configurable and cannot be bound as a
// parameter.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ResolveKeywordTable returns the actual keyword table name, preferring the
// configured name and falling back between the `keyword`/`keywords`
// spellings that exist in deployed schemas.
func (db *DB) ResolveKeywordTable(ctx context.Context, preferred string) (string, error) {
	if !identifierRe.MatchString(preferred) {
		return "", fmt.Errorf("invalid keyword table name: %q", preferred)
	}

	exists, err := db.tableExists(ctx, preferred)
	if err != nil {
		return "", err
	}
	if exists {
		return preferred, nil
	}

	fallback := "keyword"
	if preferred == "keyword" {
		fallback = "keywords"
	}
	exists, err = db.tableExists(ctx, fallback)
	if err != nil {
		return "", err
	}
	if exists {
		return fallback, nil
	}
	return "", fmt.Errorf("neither %q nor %q table was found", preferred, fallback)
}

func (db *DB) tableExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM information_schema.tables
		   WHERE table_schema = current_schema() AND table_name = $1
		 )`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return exists, nil
}

// FetchMentorRows loads every mentor profile with its aggregated keyword
// names. keywordTable must come from ResolveKeywordTable.
func (db *DB) FetchMentorRows(ctx context.Context, keywordTable string) ([]MentorRow, error) {
	if !identifierRe.MatchString(keywordTable) {
		return nil, fmt.Errorf("invalid keyword table name: %q", keywordTable)
	}

	query := fmt.Sprintf(`
		SELECT
		  u.id,
		  u.name,
		  COALESCE(mp.company, ''),
		  COALESCE(mp.price, 0),
		  COALESCE(mp.mentoring_count, 0),
		  COALESCE(mp.tech_stack, ''),
		  COALESCE(string_agg(k.name, ','), '')
		FROM users u
		INNER JOIN mentor_profiles mp
		  ON mp.user_id = u.id
		LEFT JOIN keyword_mapping km
		  ON km.user_id = u.id
		LEFT JOIN %s k
		  ON k.id = km.keyword_id
		WHERE u.role = 'MENTOR'
		GROUP BY u.id, u.name, mp.company, mp.price, mp.mentoring_count, mp.tech_stack`,
		keywordTable,
	)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentors: %w", err)
	}
	defer rows.Close()

	var mentors []MentorRow
	for rows.Next() {
		var row MentorRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Company, &row.Price, &row.MentoringCount, &row.TechStack, &row.KeywordNames); err != nil {
			return nil, fmt.Errorf("failed to scan mentor row: %w", err)
		}
		mentors = append(mentors, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mentor rows: %w", err)
	}
	return mentors, nil
}
