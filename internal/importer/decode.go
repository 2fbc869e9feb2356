package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "wqclean/internal/errors"
	"wqclean/pkg/contracts/domain"
)

// parseCell types a raw cell value. Blank cells become nil, numeric
// cells become float64, everything else is the trimmed string. "NaN"
// and "Inf" stay strings so numeric columns hold only finite numbers.
func parseCell(cell string) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return nil
	}
	numeric := strings.ReplaceAll(trimmed, ",", "")
	if value, err := strconv.ParseFloat(numeric, 64); err == nil &&
		!math.IsNaN(value) && !math.IsInf(value, 0) {
		return value
	}
	return trimmed
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// headerRow returns the index of the first non-blank row, or -1.
func headerRow(rows [][]string) int {
	for i, row := range rows {
		if !isBlankRow(row) {
			return i
		}
	}
	return -1
}

// buildDataset converts raw rows into a typed dataset. The first
// non-blank row is the header; all-blank rows are dropped. Ragged rows
// are tolerated: cells missing from short rows load as nil and cells
// beyond the header are ignored.
func buildDataset(rows [][]string, source string) (domain.Dataset, error) {
	start := headerRow(rows)
	if start < 0 {
		return domain.Dataset{}, apperrors.NewParsingError(
			fmt.Sprintf("no header row found in %s", source), nil)
	}

	columns := make([]string, len(rows[start]))
	for i, name := range rows[start] {
		columns[i] = strings.TrimSpace(name)
	}

	ds := domain.Dataset{
		Columns: columns,
		Rows:    make([]domain.Record, 0, len(rows)-start-1),
	}
	for _, raw := range rows[start+1:] {
		if isBlankRow(raw) {
			continue
		}
		record := make(domain.Record, len(columns))
		for i, col := range columns {
			record[col] = parseCell(cellAt(raw, i))
		}
		ds.Rows = append(ds.Rows, record)
	}
	return ds, nil
}

// buildCrosswalk converts raw rows into a crosswalk. Rows with a blank
// characteristic name are skipped; names and parameters are trimmed.
func buildCrosswalk(rows [][]string, nameColumn, paramColumn, source string) (domain.Crosswalk, error) {
	start := headerRow(rows)
	if start < 0 {
		return domain.Crosswalk{}, apperrors.NewCrosswalkError(
			fmt.Sprintf("no header row found in %s", source), nil)
	}

	nameIdx, paramIdx := -1, -1
	for i, header := range rows[start] {
		switch strings.TrimSpace(header) {
		case nameColumn:
			nameIdx = i
		case paramColumn:
			paramIdx = i
		}
	}
	var missing []string
	if nameIdx < 0 {
		missing = append(missing, nameColumn)
	}
	if paramIdx < 0 {
		missing = append(missing, paramColumn)
	}
	if len(missing) > 0 {
		return domain.Crosswalk{}, apperrors.NewCrosswalkError(
			fmt.Sprintf("%s is missing required columns: %s", source, strings.Join(missing, ", ")), nil)
	}

	var cw domain.Crosswalk
	for _, raw := range rows[start+1:] {
		name := strings.TrimSpace(cellAt(raw, nameIdx))
		if name == "" {
			continue
		}
		cw.Entries = append(cw.Entries, domain.CrosswalkEntry{
			CharacteristicName: name,
			Parameter:          strings.TrimSpace(cellAt(raw, paramIdx)),
		})
	}
	return cw, nil
}
