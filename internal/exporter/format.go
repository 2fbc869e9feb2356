package exporter

import (
	"wqclean/pkg/contracts/domain"
)

// formatRow renders one record in column order using the shared cell
// formatting rules. Missing cells render as empty strings.
func formatRow(columns []string, row domain.Record) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = domain.FormatValue(row.Value(col))
	}
	return out
}

// datasetRecords renders every dataset row in column order.
func datasetRecords(ds domain.Dataset) [][]string {
	records := make([][]string, len(ds.Rows))
	for i, row := range ds.Rows {
		records[i] = formatRow(ds.Columns, row)
	}
	return records
}
