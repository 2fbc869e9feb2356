package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	apperrors "wqclean/internal/errors"
	"wqclean/pkg/contracts/domain"
)

// utf8BOM is the byte order mark Excel prepends to CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadDatasetCSV loads a portal result download from a CSV file.
func ReadDatasetCSV(path string) (domain.Dataset, error) {
	rows, err := readCSVFile(path)
	if err != nil {
		return domain.Dataset{}, err
	}
	return buildDataset(rows, filepath.Base(path))
}

// ReadCrosswalkCSV loads a characteristic-name crosswalk from a CSV
// file. Empty column names fall back to the portal defaults,
// CharacteristicName and Parameter.
func ReadCrosswalkCSV(path, nameColumn, paramColumn string) (domain.Crosswalk, error) {
	if nameColumn == "" {
		nameColumn = domain.DefaultCharacteristicNameColumn
	}
	if paramColumn == "" {
		paramColumn = domain.DefaultParameterColumn
	}

	rows, err := readCSVFile(path)
	if err != nil {
		return domain.Crosswalk{}, err
	}
	return buildCrosswalk(rows, nameColumn, paramColumn, filepath.Base(path))
}

func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("input file %s", path))
		}
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)
	if lead, err := buffered.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		if _, err := buffered.Discard(len(utf8BOM)); err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
		}
	}

	reader := csv.NewReader(buffered)
	// Portal downloads occasionally carry short rows; length checks
	// happen when records are built.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}
	return rows, nil
}
