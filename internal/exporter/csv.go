package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "wqclean/internal/errors"
	"wqclean/internal/infrastructure"
	"wqclean/pkg/contracts/domain"
)

// utf8BOM is the byte order mark that makes Excel read CSV as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance. A nil logger falls
// back to slog.Default().
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: infrastructure.WithComponent(logger, "exporter")}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteDataset writes a dataset to a CSV file: header row first, one
// record per row, cells rendered with the shared formatting rules, and
// a UTF-8 BOM so Excel opens the file cleanly.
func (w *CSVWriter) WriteDataset(filePath string, ds domain.Dataset) error {
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   ds.Columns,
		Records:   datasetRecords(ds),
		BOMPrefix: true,
	})
}

// AppendDataset appends a dataset's records to an existing CSV file
// without repeating the header.
func (w *CSVWriter) AppendDataset(filePath string, ds domain.Dataset) error {
	return w.WriteCSV(filePath, WriteOptions{
		Records: datasetRecords(ds),
		Append:  true,
	})
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	w.logger.Info("writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", filePath), err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to open %s", filePath), err)
	}
	defer file.Close()

	// Write BOM if requested (helps Excel recognize UTF-8)
	if options.BOMPrefix && !options.Append {
		if _, err := file.Write(utf8BOM); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write BOM to %s", filePath), err)
		}
	}

	writer := csv.NewWriter(file)

	if !options.Append && len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write headers to %s", filePath), err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to write record %d to %s", i, filePath), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to flush %s", filePath), err)
	}
	return nil
}

// StreamWriter provides streaming CSV writing for large datasets
type StreamWriter struct {
	file    *os.File
	writer  *csv.Writer
	columns []string
}

// CreateStreamWriter creates a streaming CSV writer for the given
// columns. The header row and BOM are written immediately; records
// follow one at a time.
func (w *CSVWriter) CreateStreamWriter(filePath string, columns []string) (*StreamWriter, error) {
	w.logger.Info("creating CSV stream writer",
		slog.String("file_path", filePath),
		slog.Int("column_count", len(columns)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to create directory for %s", filePath), err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to create %s", filePath), err)
	}

	if _, err := file.Write(utf8BOM); err != nil {
		file.Close()
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to write BOM to %s", filePath), err)
	}

	writer := csv.NewWriter(file)
	if len(columns) > 0 {
		if err := writer.Write(columns); err != nil {
			file.Close()
			return nil, apperrors.NewStorageError(fmt.Sprintf("failed to write headers to %s", filePath), err)
		}
	}

	return &StreamWriter{
		file:    file,
		writer:  writer,
		columns: append([]string(nil), columns...),
	}, nil
}

// WriteRow renders and writes a single record in column order.
func (s *StreamWriter) WriteRow(row domain.Record) error {
	return s.writer.Write(formatRow(s.columns, row))
}

// WriteRecord writes a single pre-rendered record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Close flushes and closes the stream writer
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return apperrors.NewStorageError("failed to flush stream writer", err)
	}
	if err := s.file.Close(); err != nil {
		return apperrors.NewStorageError("failed to close stream writer", err)
	}
	return nil
}
