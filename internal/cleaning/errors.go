package cleaning

import (
	"errors"
	"fmt"
	"strings"
)

// CrosswalkFanoutError reports that harmonization multiplied records
// because the crosswalk maps at least one characteristic name to several
// parameters. The crosswalk itself is malformed; the pipeline does not
// recover from this.
type CrosswalkFanoutError struct {
	RowsIn          int
	RowsOut         int
	DuplicatedNames []string
}

// Error implements the error interface
func (e *CrosswalkFanoutError) Error() string {
	return fmt.Sprintf("crosswalk fan-out: harmonization grew %d records to %d; duplicated characteristic names: %s",
		e.RowsIn, e.RowsOut, strings.Join(e.DuplicatedNames, ", "))
}

// SchemaError reports columns that an operation needs but the dataset
// does not carry.
type SchemaError struct {
	MissingColumns []string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// IsCrosswalkFanout checks if an error is a CrosswalkFanoutError
func IsCrosswalkFanout(err error) bool {
	var fanoutErr *CrosswalkFanoutError
	return errors.As(err, &fanoutErr)
}

// IsSchema checks if an error is a SchemaError
func IsSchema(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
