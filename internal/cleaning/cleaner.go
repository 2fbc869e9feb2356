package cleaning

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wqclean/internal/infrastructure"
	"wqclean/pkg/contracts/domain"
)

// Cleaner applies the harmonization and cleaning pipeline to
// water-quality result datasets. A Cleaner is safe for concurrent use;
// every transformation works on a copy of its input.
type Cleaner struct {
	logger      *slog.Logger
	opts        Options
	foldedTerms []string
}

// NewCleaner creates a cleaner with the given options. A nil logger
// falls back to slog.Default(). A zero-value schema falls back to the
// portal default schema, and nil missing-comment terms fall back to the
// portal default vocabulary.
func NewCleaner(logger *slog.Logger, opts Options) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Schema == (domain.Schema{}) {
		opts.Schema = domain.DefaultSchema()
	}
	if opts.MissingCommentTerms == nil {
		opts.MissingCommentTerms = domain.DefaultMissingCommentTerms()
	}
	if opts.SortWorkers < 1 {
		opts.SortWorkers = 1
	}

	return &Cleaner{
		logger:      infrastructure.WithComponent(logger, "cleaner"),
		opts:        opts,
		foldedTerms: foldTerms(opts.MissingCommentTerms),
	}
}

// Options returns a copy of the cleaner's effective options.
func (c *Cleaner) Options() Options {
	opts := c.opts
	opts.MissingCommentTerms = append([]string(nil), c.opts.MissingCommentTerms...)
	return opts
}

// Clean runs the standard pipeline: required-column check, harmonize,
// flag missing results, crosswalk fan-out guard, then optional
// exact-duplicate removal. The duplicate-removal report is written to
// the log as an informational side effect, never returned.
func (c *Cleaner) Clean(ctx context.Context, ds domain.Dataset, cw domain.Crosswalk) (domain.Dataset, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()

	if missing := ds.MissingColumns(c.opts.Schema.Required()...); len(missing) > 0 {
		return domain.Dataset{}, &SchemaError{MissingColumns: missing}
	}

	c.logger.InfoContext(ctx, "cleaning dataset",
		slog.Int("rows", ds.NumRows()),
		slog.Int("crosswalk_entries", cw.Len()))

	harmonized, err := c.Harmonize(ctx, ds, cw)
	if err != nil {
		return domain.Dataset{}, err
	}

	flagged, err := c.FlagMissingResults(ctx, harmonized)
	if err != nil {
		return domain.Dataset{}, err
	}

	if flagged.NumRows() > ds.NumRows() {
		fanout := &CrosswalkFanoutError{
			RowsIn:          ds.NumRows(),
			RowsOut:         flagged.NumRows(),
			DuplicatedNames: cw.DuplicatedNames(),
		}
		c.logger.ErrorContext(ctx, "crosswalk fan-out detected",
			slog.Int("rows_in", fanout.RowsIn),
			slog.Int("rows_out", fanout.RowsOut),
			slog.String("duplicated_names", strings.Join(fanout.DuplicatedNames, ", ")))
		return domain.Dataset{}, fanout
	}

	cleaned := flagged
	if c.opts.RemoveExactDuplicates {
		resolved, err := c.ResolveDuplicates(ctx, cleaned, nil)
		if err != nil {
			return domain.Dataset{}, err
		}

		removed := cleaned.NumRows() - resolved.NumRows()
		fraction := 0.0
		if cleaned.NumRows() > 0 {
			fraction = float64(removed) / float64(cleaned.NumRows()) * 100
		}
		c.logger.InfoContext(ctx,
			fmt.Sprintf("Removed %d of %d records (%.1f%%)", removed, cleaned.NumRows(), fraction),
			slog.Int("records_removed", removed),
			slog.Int("records_before", cleaned.NumRows()),
			slog.Int("records_after", resolved.NumRows()))

		cleaned = resolved
	}

	c.logger.InfoContext(ctx, "cleaning complete",
		slog.Int("rows_in", ds.NumRows()),
		slog.Int("rows_out", cleaned.NumRows()),
		slog.Duration("duration", time.Since(start)))

	return cleaned, nil
}
