package cleaning

import (
	"wqclean/internal/config"
	"wqclean/pkg/contracts/domain"
)

// Options holds configuration for a Cleaner. The zero value is not a
// useful configuration: use DefaultOptions or OptionsFromConfig, or set
// every field explicitly. In particular RemoveExactDuplicates defaults
// to false in the zero value while DefaultOptions enables it.
type Options struct {
	// Schema names the dataset columns the pipeline reads and writes.
	Schema domain.Schema
	// MissingCommentTerms is the vocabulary for comment-based missing
	// flagging. nil means the portal default vocabulary; an empty
	// non-nil slice disables comment matching.
	MissingCommentTerms []string
	// RemoveExactDuplicates makes Clean drop exact duplicate records.
	RemoveExactDuplicates bool
	// SortWorkers bounds the goroutines used by the deterministic sort.
	// Values below 2 keep the sort sequential.
	SortWorkers int
}

// DefaultOptions returns options matching a standard Water Quality
// Portal download with exact-duplicate removal enabled.
func DefaultOptions() Options {
	return Options{
		Schema:                domain.DefaultSchema(),
		MissingCommentTerms:   domain.DefaultMissingCommentTerms(),
		RemoveExactDuplicates: true,
		SortWorkers:           1,
	}
}

// OptionsFromConfig builds cleaner options from loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return DefaultOptions()
	}
	return Options{
		Schema:                cfg.Schema.ToSchema(),
		MissingCommentTerms:   append([]string(nil), cfg.Cleaning.MissingCommentTerms...),
		RemoveExactDuplicates: cfg.Cleaning.RemoveDuplicates(),
		SortWorkers:           cfg.Cleaning.SortWorkers,
	}
}
