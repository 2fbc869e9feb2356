package domain

// DefaultMissingCommentTerms returns the comment substrings that mark a
// result as unusable in portal data. Matching is case-insensitive, so
// the canonical lowercase spelling is used here. Callers get a fresh
// copy they are free to modify.
func DefaultMissingCommentTerms() []string {
	return []string{
		"analysis lost",
		"not analyzed",
		"not recorded",
		"not collected",
		"no measurement taken",
	}
}
