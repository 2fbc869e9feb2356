package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqclean/pkg/contracts/domain"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want any
	}{
		{"empty cell", "", nil},
		{"whitespace only", "   ", nil},
		{"integer", "42", 42.0},
		{"decimal", "2.5", 2.5},
		{"negative", "-0.25", -0.25},
		{"scientific notation", "1.5e3", 1500.0},
		{"thousands separator", "1,250.75", 1250.75},
		{"leading zeros", "007", 7.0},
		{"padded number", "  3.14  ", 3.14},
		{"plain text", "Not Detected", "Not Detected"},
		{"padded text", "  Nitrate  ", "Nitrate"},
		{"NaN stays text", "NaN", "NaN"},
		{"infinity stays text", "Inf", "Inf"},
		{"negative infinity stays text", "-Inf", "-Inf"},
		{"boolean-looking text stays text", "true", "true"},
		{"date-looking text stays text", "2024-06-01", "2024-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCell(tt.cell))
		})
	}
}

func TestBuildDataset_SkipsLeadingBlankRows(t *testing.T) {
	rows := [][]string{
		{"", ""},
		{},
		{"CharacteristicName", "ResultMeasureValue"},
		{"Nitrate", "2.5"},
	}

	ds, err := buildDataset(rows, "results.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"CharacteristicName", "ResultMeasureValue"}, ds.Columns)
	require.Equal(t, 1, ds.NumRows())
	assert.Equal(t, domain.Record{
		"CharacteristicName": "Nitrate",
		"ResultMeasureValue": 2.5,
	}, ds.Rows[0])
}

func TestBuildDataset_NoHeader(t *testing.T) {
	_, err := buildDataset([][]string{{"", ""}, {}}, "results.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row found in results.csv")
}

func TestBuildCrosswalk_TrimsAndSkipsBlankNames(t *testing.T) {
	rows := [][]string{
		{"CharacteristicName", "Parameter"},
		{"  Nitrate  ", "  Nitrogen  "},
		{"", "Orphan"},
		{"   ", "Orphan"},
		{"Phosphorus", ""},
	}

	cw, err := buildCrosswalk(rows, "CharacteristicName", "Parameter", "crosswalk.csv")
	require.NoError(t, err)

	assert.Equal(t, []domain.CrosswalkEntry{
		{CharacteristicName: "Nitrate", Parameter: "Nitrogen"},
		{CharacteristicName: "Phosphorus", Parameter: ""},
	}, cw.Entries)
}
