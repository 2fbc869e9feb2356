package cleaning

import (
	"context"
	"log/slog"

	"wqclean/pkg/contracts/domain"
)

// Harmonize left-joins the dataset against the crosswalk on exact
// characteristic-name match and appends the harmonized parameter column.
// Records without a crosswalk entry are kept with a nil parameter. A
// crosswalk that maps one name to several parameters multiplies the
// matching records here; Clean rejects that afterwards by comparing row
// counts.
func (c *Cleaner) Harmonize(ctx context.Context, ds domain.Dataset, cw domain.Crosswalk) (domain.Dataset, error) {
	schema := c.opts.Schema
	if missing := ds.MissingColumns(schema.CharacteristicName); len(missing) > 0 {
		return domain.Dataset{}, &SchemaError{MissingColumns: missing}
	}

	index := cw.Index()

	out := domain.Dataset{
		Columns: ds.ColumnsWith(schema.Parameter),
		Rows:    make([]domain.Record, 0, len(ds.Rows)),
	}
	for _, row := range ds.Rows {
		var params []string
		if name, ok := row.Value(schema.CharacteristicName).(string); ok {
			params = index[name]
		}

		if len(params) == 0 {
			joined := row.Clone()
			joined[schema.Parameter] = nil
			out.Rows = append(out.Rows, joined)
			continue
		}
		for _, param := range params {
			joined := row.Clone()
			joined[schema.Parameter] = param
			out.Rows = append(out.Rows, joined)
		}
	}

	c.logger.DebugContext(ctx, "harmonized characteristic names",
		slog.Int("rows_in", ds.NumRows()),
		slog.Int("rows_out", out.NumRows()),
		slog.Int("crosswalk_entries", cw.Len()))

	return out, nil
}
