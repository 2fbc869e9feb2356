package cleaning

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrosswalkFanoutError_Error(t *testing.T) {
	err := &CrosswalkFanoutError{
		RowsIn:          100,
		RowsOut:         130,
		DuplicatedNames: []string{"Nitrate", "Phosphorus"},
	}

	assert.Equal(t,
		"crosswalk fan-out: harmonization grew 100 records to 130; duplicated characteristic names: Nitrate, Phosphorus",
		err.Error())
}

func TestSchemaError_Error(t *testing.T) {
	err := &SchemaError{MissingColumns: []string{"ResultMeasureValue", "ResultCommentText"}}

	assert.Equal(t,
		"dataset is missing required columns: ResultMeasureValue, ResultCommentText",
		err.Error())
}

func TestIsCrosswalkFanout(t *testing.T) {
	fanout := &CrosswalkFanoutError{RowsIn: 1, RowsOut: 2}

	assert.True(t, IsCrosswalkFanout(fanout))
	assert.True(t, IsCrosswalkFanout(fmt.Errorf("cleaning failed: %w", fanout)))
	assert.False(t, IsCrosswalkFanout(errors.New("plain error")))
	assert.False(t, IsCrosswalkFanout(nil))
	assert.False(t, IsCrosswalkFanout(&SchemaError{}))
}

func TestIsSchema(t *testing.T) {
	schemaErr := &SchemaError{MissingColumns: []string{"Parameter"}}

	assert.True(t, IsSchema(schemaErr))
	assert.True(t, IsSchema(fmt.Errorf("cleaning failed: %w", schemaErr)))
	assert.False(t, IsSchema(errors.New("plain error")))
	assert.False(t, IsSchema(nil))
	assert.False(t, IsSchema(&CrosswalkFanoutError{}))
}
