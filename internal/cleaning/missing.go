package cleaning

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"wqclean/pkg/contracts/domain"
)

// notReportedCondition is the detection-condition phrase that marks a
// result as missing regardless of every other field.
const notReportedCondition = "not reported"

// foldTerms case-folds the vocabulary once so each record comparison is
// a plain substring check. Blank terms are dropped: an empty substring
// would match every comment.
func foldTerms(terms []string) []string {
	folder := cases.Fold()
	folded := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		folded = append(folded, folder.String(term))
	}
	return folded
}

// FlagMissingResults appends a boolean column telling whether each
// record's result is effectively missing: no result value and no
// detection limit, a detection condition saying "not reported", or a
// comment containing any term of the missing-comment vocabulary. Text
// matching is case-insensitive using Unicode case folding. Row count
// and order are unchanged.
func (c *Cleaner) FlagMissingResults(ctx context.Context, ds domain.Dataset) (domain.Dataset, error) {
	schema := c.opts.Schema
	if missing := ds.MissingColumns(
		schema.ResultValue,
		schema.DetectionLimit,
		schema.DetectionCondition,
		schema.Comment,
	); len(missing) > 0 {
		return domain.Dataset{}, &SchemaError{MissingColumns: missing}
	}

	// cases.Caser carries internal state, so each call folds with its
	// own instance rather than sharing one across goroutines.
	folder := cases.Fold()

	out := domain.Dataset{
		Columns: ds.ColumnsWith(schema.MissingResult),
		Rows:    make([]domain.Record, len(ds.Rows)),
	}
	flagged := 0
	for i, row := range ds.Rows {
		missing := domain.IsMissing(row.Value(schema.ResultValue)) &&
			domain.IsMissing(row.Value(schema.DetectionLimit))

		if !missing {
			if condition, ok := row.Value(schema.DetectionCondition).(string); ok {
				missing = strings.Contains(folder.String(condition), notReportedCondition)
			}
		}
		if !missing && len(c.foldedTerms) > 0 {
			if comment, ok := row.Value(schema.Comment).(string); ok {
				foldedComment := folder.String(comment)
				for _, term := range c.foldedTerms {
					if strings.Contains(foldedComment, term) {
						missing = true
						break
					}
				}
			}
		}

		annotated := row.Clone()
		annotated[schema.MissingResult] = missing
		out.Rows[i] = annotated
		if missing {
			flagged++
		}
	}

	c.logger.DebugContext(ctx, "flagged missing results",
		slog.Int("rows", out.NumRows()),
		slog.Int("flagged", flagged))

	return out, nil
}
