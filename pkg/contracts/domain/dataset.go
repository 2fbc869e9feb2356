package domain

// Record represents a single water-quality result row as a mapping from
// column name to cell value. Cell values are nil (missing), float64,
// string, or bool (bools only appear in derived flag columns). A record
// has no identity beyond its column values.
type Record map[string]any

// Value returns the cell value for the given column, or nil when the
// column is absent from the record.
func (r Record) Value(column string) any {
	if r == nil {
		return nil
	}
	return r[column]
}

// Clone returns a shallow copy of the record. Cell values are immutable
// scalars, so a shallow copy is a full copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Dataset represents an ordered collection of records sharing a common
// column schema. Columns carries the schema order used for deterministic
// sorting and for export; Rows carries the records in their current
// order. Row order is significant only for output determinism.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Record `json:"rows"`
}

// NumRows returns the number of records in the dataset.
func (d Dataset) NumRows() int {
	return len(d.Rows)
}

// HasColumn reports whether the named column is part of the schema.
func (d Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of required column names absent from
// the schema, in the order given.
func (d Dataset) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ColumnsWith returns a copy of the schema with the given columns
// appended in order, skipping any column already present.
func (d Dataset) ColumnsWith(names ...string) []string {
	out := make([]string, len(d.Columns), len(d.Columns)+len(names))
	copy(out, d.Columns)
	for _, name := range names {
		present := false
		for _, col := range out {
			if col == name {
				present = true
				break
			}
		}
		if !present {
			out = append(out, name)
		}
	}
	return out
}

// Clone returns a deep copy of the dataset. Transformations operate on
// copies so callers keep an unmodified input.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Columns: make([]string, len(d.Columns)),
		Rows:    make([]Record, len(d.Rows)),
	}
	copy(out.Columns, d.Columns)
	for i, r := range d.Rows {
		out.Rows[i] = r.Clone()
	}
	return out
}
