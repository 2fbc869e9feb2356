package cleaning

import (
	"context"
	"log/slog"

	"wqclean/pkg/contracts/domain"
)

// resolveKeyColumns expands an empty duplicate key to all dataset
// columns and rejects key columns the dataset does not carry.
func resolveKeyColumns(ds domain.Dataset, keyColumns []string) ([]string, error) {
	if len(keyColumns) == 0 {
		return append([]string(nil), ds.Columns...), nil
	}
	if missing := ds.MissingColumns(keyColumns...); len(missing) > 0 {
		return nil, &SchemaError{MissingColumns: missing}
	}
	return keyColumns, nil
}

// FlagDuplicates sorts the dataset deterministically by the duplicate
// key (then by every remaining column in schema order), groups records
// sharing key values, and appends two columns: the numeric size of each
// record's group and a boolean set when that size exceeds one. Row count
// is preserved; the returned dataset is in the sorted order. An empty
// key means all columns.
func (c *Cleaner) FlagDuplicates(ctx context.Context, ds domain.Dataset, keyColumns []string) (domain.Dataset, error) {
	schema := c.opts.Schema
	keys, err := resolveKeyColumns(ds, keyColumns)
	if err != nil {
		return domain.Dataset{}, err
	}

	sorted, err := sortRowsStable(ctx, ds.Rows, sortColumns(ds, keys), c.opts.SortWorkers)
	if err != nil {
		return domain.Dataset{}, err
	}

	out := domain.Dataset{
		Columns: ds.ColumnsWith(schema.GroupSize, schema.IsDuplicate),
		Rows:    make([]domain.Record, len(sorted)),
	}

	groups := groupSpans(sorted, keys)
	duplicates := 0
	for _, group := range groups {
		size := group.size()
		for i := group.lo; i < group.hi; i++ {
			annotated := sorted[i].Clone()
			annotated[schema.GroupSize] = float64(size)
			annotated[schema.IsDuplicate] = size > 1
			out.Rows[i] = annotated
		}
		if size > 1 {
			duplicates += size
		}
	}

	c.logger.DebugContext(ctx, "flagged duplicate records",
		slog.Int("rows", out.NumRows()),
		slog.Int("groups", len(groups)),
		slog.Int("duplicates", duplicates))

	return out, nil
}

// ResolveDuplicates sorts the dataset the same way FlagDuplicates does
// and keeps only the first record of every duplicate group; for fully
// tied records the original input order decides which one survives. The
// returned dataset is in the sorted order. An empty key means all
// columns, which removes exact duplicates.
func (c *Cleaner) ResolveDuplicates(ctx context.Context, ds domain.Dataset, keyColumns []string) (domain.Dataset, error) {
	keys, err := resolveKeyColumns(ds, keyColumns)
	if err != nil {
		return domain.Dataset{}, err
	}

	sorted, err := sortRowsStable(ctx, ds.Rows, sortColumns(ds, keys), c.opts.SortWorkers)
	if err != nil {
		return domain.Dataset{}, err
	}

	out := domain.Dataset{
		Columns: append([]string(nil), ds.Columns...),
		Rows:    make([]domain.Record, 0, len(sorted)),
	}
	for _, group := range groupSpans(sorted, keys) {
		out.Rows = append(out.Rows, sorted[group.lo].Clone())
	}

	c.logger.DebugContext(ctx, "resolved duplicate records",
		slog.Int("rows_in", ds.NumRows()),
		slog.Int("rows_out", out.NumRows()))

	return out, nil
}
