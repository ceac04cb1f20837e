// Package canonical maps raw text fragments onto the fixed vocabulary of
// stack and topic tags, recording provenance for every hit. Matching is
// pure and deterministic: identical input always yields an identical
// CanonicalTagSet, with no randomness and no external calls.
package canonical

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/mentor-match/internal/types"
)

const (
	// reasonNoRuleMatch marks fragments that produced zero rule hits.
	reasonNoRuleMatch = "no_rule_match"
	// evidenceDerived marks category entries, which carry no direct
	// textual evidence of their own.
	evidenceDerived = "derived_from_matched_tags"

	sourceRule = "rule"

	confidenceRuleHit  = 0.95
	confidenceCategory = 0.9
)

var (
	// punctRe strips punctuation except + - / which are significant in
	// technology names (ci/cd, n+1, jax-rs).
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s+\-/]`)
	spaceRe = regexp.MustCompile(`\s+`)
	tokenRe = regexp.MustCompile(`[,/|;\n]+`)
)

// NormalizeText case-folds a fragment, strips punctuation and collapses
// runs of whitespace to a single space.
func NormalizeText(text string) string {
	value := strings.ToLower(strings.TrimSpace(text))
	value = punctRe.ReplaceAllString(value, " ")
	value = spaceRe.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// SplitTokens splits a raw comma/slash/pipe/semicolon/newline-joined field
// into trimmed non-empty fragments.
func SplitTokens(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := tokenRe.Split(raw, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// hit records one rule firing against a fragment.
type hit struct {
	canonical string
	alias     string
	evidence  string
	synonyms  []string
}

// matchRules tests a fragment against a rule table. A rule fires when any
// of its aliases, normalized, appears as a substring of the normalized
// fragment; multiple rules may fire for one fragment, but each rule at
// most once.
func matchRules(text string, rules []Rule) []hit {
	normalized := NormalizeText(text)
	var hits []hit
	for _, rule := range rules {
		for _, alias := range rule.Aliases {
			aliasNorm := NormalizeText(alias)
			if aliasNorm != "" && strings.Contains(normalized, aliasNorm) {
				hits = append(hits, hit{
					canonical: rule.Canonical,
					alias:     alias,
					evidence:  text,
					synonyms:  rule.Aliases,
				})
				break
			}
		}
	}
	return hits
}

// ExtractUserTags canonicalizes a sequence of free-text sentences into a
// CanonicalTagSet with full provenance. Fragments matching nothing are
// recorded as unknown, never dropped.
func ExtractUserTags(sentences []string) types.CanonicalTagSet {
	stacks := make(map[string]bool)
	topics := make(map[string]bool)
	normalized := []types.NormalizedItem{}
	unknown := []types.UnknownItem{}

	for _, sentence := range sentences {
		stackHits := matchRules(sentence, stackRules)
		topicHits := matchRules(sentence, topicRules)

		if len(stackHits) == 0 && len(topicHits) == 0 {
			unknown = append(unknown, types.UnknownItem{Raw: sentence, Reason: reasonNoRuleMatch})
		}

		for _, h := range stackHits {
			stacks[h.canonical] = true
			normalized = append(normalized, types.NormalizedItem{
				Type:       "stack",
				Canonical:  h.canonical,
				Synonyms:   h.synonyms,
				Confidence: confidenceRuleHit,
				Evidence:   h.evidence,
				Source:     sourceRule,
			})
		}
		for _, h := range topicHits {
			topics[h.canonical] = true
			normalized = append(normalized, types.NormalizedItem{
				Type:       "topic",
				Canonical:  h.canonical,
				Synonyms:   h.synonyms,
				Confidence: confidenceRuleHit,
				Evidence:   h.evidence,
				Source:     sourceRule,
			})
		}
	}

	allTags := make(map[string]bool, len(stacks)+len(topics))
	for tag := range stacks {
		allTags[tag] = true
	}
	for tag := range topics {
		allTags[tag] = true
	}

	categories := []string{}
	for _, cat := range categoryRules {
		if intersects(allTags, cat.Members) {
			categories = append(categories, cat.Name)
			normalized = append(normalized, types.NormalizedItem{
				Type:       "category",
				Canonical:  cat.Name,
				Synonyms:   []string{cat.Name},
				Confidence: confidenceCategory,
				Evidence:   evidenceDerived,
				Source:     sourceRule,
			})
		}
	}
	sort.Strings(categories)

	return types.CanonicalTagSet{
		Version:         Version,
		Stacks:          SortedTags(stacks),
		Topics:          SortedTags(topics),
		Categories:      categories,
		NormalizedItems: normalized,
		UnknownItems:    unknown,
	}
}

// CanonicalizeMentorTags canonicalizes a mentor row's free-text tech stack
// field and comma-joined keyword names into stack and topic tag sets.
// Provenance is not retained for mentors; only the user side is audited.
func CanonicalizeMentorTags(techStack, keywordNames string) (stacks, topics map[string]bool) {
	stacks = make(map[string]bool)
	topics = make(map[string]bool)
	fragments := append(SplitTokens(techStack), SplitTokens(keywordNames)...)
	for _, token := range fragments {
		for _, h := range matchRules(token, stackRules) {
			stacks[h.canonical] = true
		}
		for _, h := range matchRules(token, topicRules) {
			topics[h.canonical] = true
		}
	}
	return stacks, topics
}

// SortedTags returns the members of a tag set in ascending order.
func SortedTags(set map[string]bool) []string {
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func intersects(a, b map[string]bool) bool {
	for tag := range a {
		if b[tag] {
			return true
		}
	}
	return false
}
