// Package importer loads Water Quality Portal download files into
// datasets and crosswalks.
//
// The portal serves result downloads and characteristic-name
// crosswalks as CSV or Excel workbooks. Readers in this package accept
// both: the first non-blank row is the header, later rows become
// records, and every cell is typed the same way regardless of source
// format. Blank cells become nil, numeric cells become float64 (with
// thousands separators tolerated), and everything else is kept as a
// whitespace-trimmed string.
//
// Failures are reported as application errors: a missing file is a
// NOT_FOUND error, an unreadable or malformed file is a PARSING error,
// and a crosswalk without its two required columns is a CROSSWALK
// error.
package importer
