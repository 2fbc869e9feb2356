// Package exporter writes cleaned water-quality datasets to CSV files.
//
// CSVWriter is the core writer: headers, optional append mode, and an
// optional UTF-8 BOM so Excel opens the output cleanly. Dataset cells
// are rendered with the shared domain formatting rules, so a value
// survives a write/read cycle through the importer unchanged apart
// from the boolean flag columns, which load back as text.
//
// For outputs too large to hold as [][]string, CreateStreamWriter
// returns a StreamWriter that renders one record at a time.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(logger)
//	if err := writer.WriteDataset("reports/cleaned.csv", cleaned); err != nil {
//		return err
//	}
//
// Failures are reported as STORAGE application errors.
package exporter
