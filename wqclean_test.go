package wqclean_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"wqclean"
	"wqclean/pkg/contracts/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resultColumns returns the five required portal columns in schema order.
func resultColumns() []string {
	s := domain.DefaultSchema()
	return []string{
		s.CharacteristicName,
		s.ResultValue,
		s.DetectionLimit,
		s.DetectionCondition,
		s.Comment,
	}
}

// resultRecord builds a record with the five required portal columns.
func resultRecord(name, result, limit, condition, comment any) domain.Record {
	s := domain.DefaultSchema()
	return domain.Record{
		s.CharacteristicName: name,
		s.ResultValue:        result,
		s.DetectionLimit:     limit,
		s.DetectionCondition: condition,
		s.Comment:            comment,
	}
}

// TestClean_PortalDownloadRoundTrip drives the whole pipeline the way a
// consumer would: load a portal CSV and a crosswalk, clean, write the
// result back out, and read the written file again.
func TestClean_PortalDownloadRoundTrip(t *testing.T) {
	datasetPath := writeFile(t, "narrowresult.csv",
		"CharacteristicName,ResultMeasureValue,DetectionQuantitationLimitMeasure.MeasureValue,ResultDetectionConditionText,ResultCommentText\n"+
			"\"Temperature, water\",12.5,,,\n"+
			"\"Temperature, water\",12.5,,,\n"+
			"Nitrate,0.35,0.1,,\n"+
			"Phosphorus,,,Not Reported,\n"+
			"pH,7.2,,,\n")
	crosswalkPath := writeFile(t, "crosswalk.csv",
		"CharacteristicName,Parameter\n"+
			"\"Temperature, water\",Temperature\n"+
			"Nitrate,Nitrate\n"+
			"pH,pH\n")

	ds, err := wqclean.ReadDatasetCSV(datasetPath)
	require.NoError(t, err)
	require.Equal(t, 5, ds.NumRows())

	cw, err := wqclean.ReadCrosswalkCSV(crosswalkPath, "", "")
	require.NoError(t, err)
	require.Equal(t, 3, cw.Len())

	cleaned, err := wqclean.Clean(context.Background(), ds, cw)
	require.NoError(t, err)

	s := domain.DefaultSchema()
	require.Equal(t, 4, cleaned.NumRows(), "one exact duplicate removed")
	assert.Equal(t, append(resultColumns(), s.Parameter, s.MissingResult), cleaned.Columns)

	var names []any
	for _, row := range cleaned.Rows {
		names = append(names, row.Value(s.CharacteristicName))
	}
	assert.Equal(t, []any{"Nitrate", "Phosphorus", "Temperature, water", "pH"}, names,
		"cleaning leaves the dataset in deterministic sorted order")

	assert.Equal(t, domain.Record{
		s.CharacteristicName: "Phosphorus",
		s.ResultValue:        nil,
		s.DetectionLimit:     nil,
		s.DetectionCondition: "Not Reported",
		s.Comment:            nil,
		s.Parameter:          nil,
		s.MissingResult:      true,
	}, cleaned.Rows[1], "nothing reported for phosphorus")

	cleanedPath := filepath.Join(t.TempDir(), "cleaned.csv")
	require.NoError(t, wqclean.WriteDatasetCSV(cleanedPath, cleaned))

	roundTrip, err := wqclean.ReadDatasetCSV(cleanedPath)
	require.NoError(t, err)
	assert.Equal(t, cleaned.Columns, roundTrip.Columns)
	require.Equal(t, 4, roundTrip.NumRows())
	assert.Equal(t, 0.35, roundTrip.Rows[0].Value(s.ResultValue))
	assert.Equal(t, "Temperature, water", roundTrip.Rows[2].Value(s.CharacteristicName))
	assert.Equal(t, "false", roundTrip.Rows[2].Value(s.MissingResult),
		"booleans render as text on disk and load back as strings")

	writer := wqclean.NewCSVWriter(nil)
	require.NoError(t, writer.AppendDataset(cleanedPath, cleaned))

	appended, err := wqclean.ReadDatasetCSV(cleanedPath)
	require.NoError(t, err)
	assert.Equal(t, 8, appended.NumRows())
}

func TestClean_RejectsFanoutCrosswalk(t *testing.T) {
	ds := domain.Dataset{
		Columns: resultColumns(),
		Rows: []domain.Record{
			resultRecord("Nitrate", 2.5, nil, nil, nil),
		},
	}
	cw := domain.Crosswalk{
		Entries: []domain.CrosswalkEntry{
			{CharacteristicName: "Nitrate", Parameter: "Nitrogen"},
			{CharacteristicName: "Nitrate", Parameter: "Nitrate as N"},
		},
	}

	_, err := wqclean.Clean(context.Background(), ds, cw)
	require.Error(t, err)
	assert.True(t, wqclean.IsCrosswalkFanout(err))

	var fanout *wqclean.CrosswalkFanoutError
	require.ErrorAs(t, err, &fanout)
	assert.Equal(t, 1, fanout.RowsIn)
	assert.Equal(t, 2, fanout.RowsOut)
	assert.Equal(t, []string{"Nitrate"}, fanout.DuplicatedNames)
}

func TestClean_MissingRequiredColumns(t *testing.T) {
	ds := domain.Dataset{Columns: []string{"CharacteristicName"}}

	_, err := wqclean.Clean(context.Background(), ds, domain.Crosswalk{})
	require.Error(t, err)
	assert.True(t, wqclean.IsSchema(err))

	var schemaErr *wqclean.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.MissingColumns, 4)
}

func TestNewCleaner_KeepExactDuplicates(t *testing.T) {
	opts := wqclean.DefaultOptions()
	opts.RemoveExactDuplicates = false
	cleaner := wqclean.NewCleaner(nil, opts)

	ds := domain.Dataset{
		Columns: resultColumns(),
		Rows: []domain.Record{
			resultRecord("Nitrate", 2.5, nil, nil, nil),
			resultRecord("Nitrate", 2.5, nil, nil, nil),
		},
	}

	cleaned, err := cleaner.Clean(context.Background(), ds, domain.Crosswalk{})
	require.NoError(t, err)
	assert.Equal(t, 2, cleaned.NumRows())
}

func TestOptionsFromConfig_Defaults(t *testing.T) {
	opts := wqclean.OptionsFromConfig(wqclean.DefaultConfig())
	assert.Equal(t, wqclean.DefaultOptions(), opts)
}

func TestLoadConfigFrom_File(t *testing.T) {
	path := writeFile(t, "config.yaml",
		"cleaning:\n"+
			"  sort_workers: 4\n"+
			"  remove_exact_duplicates: false\n")

	cfg, err := wqclean.LoadConfigFrom(path)
	require.NoError(t, err)

	opts := wqclean.OptionsFromConfig(cfg)
	assert.Equal(t, 4, opts.SortWorkers)
	assert.False(t, opts.RemoveExactDuplicates)
	assert.Equal(t, domain.DefaultSchema(), opts.Schema)
}

func TestReadExcelDownloads(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "Results"))
	_, err := f.NewSheet("Crosswalk")
	require.NoError(t, err)

	resultRows := [][]any{
		{"CharacteristicName", "ResultMeasureValue"},
		{"Nitrate", 2.5},
	}
	for r, row := range resultRows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Results", cell, &row))
	}
	crosswalkRows := [][]any{
		{"CharacteristicName", "Parameter"},
		{"Nitrate", "Nitrogen"},
	}
	for r, row := range crosswalkRows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Crosswalk", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "download.xlsx")
	require.NoError(t, f.SaveAs(path))

	ds, err := wqclean.ReadDatasetExcel(path, "Results")
	require.NoError(t, err)
	require.Equal(t, 1, ds.NumRows())
	assert.Equal(t, 2.5, ds.Rows[0].Value("ResultMeasureValue"))

	cw, err := wqclean.ReadCrosswalkExcel(path, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []domain.CrosswalkEntry{
		{CharacteristicName: "Nitrate", Parameter: "Nitrogen"},
	}, cw.Entries)
}
