package cleaning

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"wqclean/pkg/contracts/domain"
)

// parallelSortMinRows is the row count below which the sort always runs
// sequentially; splitting small datasets costs more than it saves.
const parallelSortMinRows = 2048

// span is a half-open row range [lo, hi).
type span struct {
	lo, hi int
}

func (s span) size() int {
	return s.hi - s.lo
}

// compareRows compares two records column by column in the given order.
func compareRows(a, b domain.Record, columns []string) int {
	for _, col := range columns {
		if c := domain.CompareValues(a.Value(col), b.Value(col)); c != 0 {
			return c
		}
	}
	return 0
}

// sortColumns returns the full deterministic sort order: the key columns
// first, then every remaining schema column in dataset order.
func sortColumns(ds domain.Dataset, keyColumns []string) []string {
	ordered := make([]string, 0, len(ds.Columns)+len(keyColumns))
	ordered = append(ordered, keyColumns...)

	isKey := make(map[string]bool, len(keyColumns))
	for _, col := range keyColumns {
		isKey[col] = true
	}
	for _, col := range ds.Columns {
		if !isKey[col] {
			ordered = append(ordered, col)
		}
	}
	return ordered
}

// sortRowsStable returns the rows sorted by the given column order using
// a stable sort; rows comparing equal keep their input order. The input
// slice is not modified.
//
// With workers > 1 and enough rows, the rows are split into contiguous
// chunks that are sorted concurrently and then merged pairwise. Merges
// prefer the left chunk on ties, so the result is identical to the
// sequential stable sort.
func sortRowsStable(ctx context.Context, rows []domain.Record, columns []string, workers int) ([]domain.Record, error) {
	sorted := make([]domain.Record, len(rows))
	copy(sorted, rows)

	if workers < 2 || len(sorted) < parallelSortMinRows {
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareRows(sorted[i], sorted[j], columns) < 0
		})
		return sorted, nil
	}

	chunks := splitSpans(len(sorted), workers)

	g, ctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		part := sorted[chunk.lo:chunk.hi]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sort.SliceStable(part, func(i, j int) bool {
				return compareRows(part[i], part[j], columns) < 0
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge adjacent chunk pairs until a single sorted run remains.
	buf := make([]domain.Record, len(sorted))
	for len(chunks) > 1 {
		merged := make([]span, 0, (len(chunks)+1)/2)
		for i := 0; i < len(chunks); i += 2 {
			if i+1 == len(chunks) {
				merged = append(merged, chunks[i])
				continue
			}
			left, right := chunks[i], chunks[i+1]
			mergeRuns(sorted, buf, left.lo, left.hi, right.hi, columns)
			merged = append(merged, span{lo: left.lo, hi: right.hi})
		}
		chunks = merged
	}

	return sorted, nil
}

// mergeRuns merges the sorted runs rows[lo:mid] and rows[mid:hi] in
// place, taking from the left run on ties to preserve stability.
func mergeRuns(rows, buf []domain.Record, lo, mid, hi int, columns []string) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if compareRows(rows[j], rows[i], columns) < 0 {
			buf[k] = rows[j]
			j++
		} else {
			buf[k] = rows[i]
			i++
		}
		k++
	}
	for i < mid {
		buf[k] = rows[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = rows[j]
		j++
		k++
	}
	copy(rows[lo:hi], buf[lo:hi])
}

// splitSpans divides n rows into at most parts contiguous spans of near
// equal size.
func splitSpans(n, parts int) []span {
	if parts > n {
		parts = n
	}
	spans := make([]span, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0
	for p := 0; p < parts; p++ {
		hi := lo + size
		if p < rem {
			hi++
		}
		spans = append(spans, span{lo: lo, hi: hi})
		lo = hi
	}
	return spans
}

// groupSpans returns the row ranges of rows sharing identical key-column
// values. Rows must already be sorted by the key columns.
func groupSpans(rows []domain.Record, keyColumns []string) []span {
	var spans []span
	lo := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || compareRows(rows[i-1], rows[i], keyColumns) != 0 {
			spans = append(spans, span{lo: lo, hi: i})
			lo = i
		}
	}
	return spans
}
