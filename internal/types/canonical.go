package types

// CanonicalTagSet is the versioned result of canonicalizing free text
// against the fixed stack/topic vocabularies.
type CanonicalTagSet struct {
	Version    string   `json:"version"`
	Stacks     []string `json:"stacks"`
	Topics     []string `json:"topics"`
	Categories []string `json:"categories"`
	// NormalizedItems is the audit trail: which fragment matched which
	// canonical tag via which alias.
	NormalizedItems []NormalizedItem `json:"normalized_items"`
	// UnknownItems records fragments that matched no rule. They are kept
	// for observability, never dropped and never an error.
	UnknownItems []UnknownItem `json:"unknown_items"`
}

// NormalizedItem is one provenance entry in a CanonicalTagSet.
type NormalizedItem struct {
	Type       string   `json:"type"` // "stack", "topic" or "category"
	Canonical  string   `json:"canonical"`
	Synonyms   []string `json:"synonyms"`
	Confidence float64  `json:"confidence"`
	Evidence   string   `json:"evidence"`
	Source     string   `json:"source"`
}

// UnknownItem records a fragment that produced zero rule hits.
type UnknownItem struct {
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}
