package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "wqclean/internal/errors"
	"wqclean/pkg/contracts/domain"
)

// ReadDatasetExcel loads a portal result download from an Excel
// workbook. An empty sheet name selects the first sheet whose header
// row carries every column in requiredColumns; with no required
// columns, the first sheet with any content wins.
func ReadDatasetExcel(path, sheet string, requiredColumns ...string) (domain.Dataset, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	defer f.Close()

	rows, err := sheetRows(f, sheet, requiredColumns, filepath.Base(path))
	if err != nil {
		return domain.Dataset{}, err
	}
	return buildDataset(rows, filepath.Base(path))
}

// ReadCrosswalkExcel loads a characteristic-name crosswalk from an
// Excel workbook. Empty column names fall back to the portal defaults;
// an empty sheet name selects the sheet carrying both columns.
func ReadCrosswalkExcel(path, sheet, nameColumn, paramColumn string) (domain.Crosswalk, error) {
	if nameColumn == "" {
		nameColumn = domain.DefaultCharacteristicNameColumn
	}
	if paramColumn == "" {
		paramColumn = domain.DefaultParameterColumn
	}

	f, err := openWorkbook(path)
	if err != nil {
		return domain.Crosswalk{}, err
	}
	defer f.Close()

	rows, err := sheetRows(f, sheet, []string{nameColumn, paramColumn}, filepath.Base(path))
	if err != nil {
		return domain.Crosswalk{}, err
	}
	return buildCrosswalk(rows, nameColumn, paramColumn, filepath.Base(path))
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("input file %s", path))
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open %s", path), err)
	}
	return f, nil
}

// sheetRows returns the rows of the named sheet, or discovers the
// sheet when no name is given.
func sheetRows(f *excelize.File, sheet string, requiredColumns []string, source string) ([][]string, error) {
	if sheet != "" {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("failed to read sheet %q of %s", sheet, source), err)
		}
		return rows, nil
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if headerMatches(rows, requiredColumns) {
			return rows, nil
		}
	}

	if len(requiredColumns) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("no sheet of %s carries columns %s", source, strings.Join(requiredColumns, ", ")), nil)
	}
	return nil, apperrors.NewParsingError(fmt.Sprintf("no sheet of %s has any content", source), nil)
}

// headerMatches reports whether the first non-blank row carries every
// required column name.
func headerMatches(rows [][]string, requiredColumns []string) bool {
	start := headerRow(rows)
	if start < 0 {
		return false
	}

	present := make(map[string]bool, len(rows[start]))
	for _, header := range rows[start] {
		present[strings.TrimSpace(header)] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return false
		}
	}
	return true
}
