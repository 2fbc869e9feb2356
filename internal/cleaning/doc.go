// Package cleaning implements the harmonization and cleaning pipeline
// for water-quality result datasets.
//
// This package contains four transformations, all exposed as methods on
// a Cleaner:
//
// Harmonize: left-joins a dataset against a characteristic-name
// crosswalk and appends the harmonized parameter column.
//
// FlagMissingResults: annotates every record with a boolean telling
// whether its result is effectively missing (no value and no detection
// limit, a "not reported" detection condition, or a comment matching
// the configured missing-comment vocabulary).
//
// FlagDuplicates / ResolveDuplicates: deterministically sort the
// dataset, group records by a duplicate key, and either annotate each
// record with its group size or keep only the first record per group.
//
// Clean chains the transformations into the standard pipeline and
// guards against crosswalk fan-out (a crosswalk that maps one
// characteristic name to several parameters would silently multiply
// records in the join).
//
// Example usage:
//
//	cleaner := cleaning.NewCleaner(logger, cleaning.DefaultOptions())
//
//	cleaned, err := cleaner.Clean(ctx, dataset, crosswalk)
//	if err != nil {
//	    // *SchemaError or *CrosswalkFanoutError
//	}
//
// All transformations leave their input dataset unmodified and return a
// new dataset.
package cleaning
