package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"call-insights-go/internal/types"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadDetectsColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Call ID", "Agent", "Transcript"},
		{"c-1", "sam", "Thank you for calling."},
		{"c-2", "alex", ""},
		{"c-3", "kim", "I have a question."},
	})

	rows, err := Load(path)
	require.NoError(t, err)

	// the empty-transcript row is skipped
	require.Len(t, rows, 2)
	assert.Equal(t, "c-1", rows[0].CallID)
	assert.Equal(t, "Thank you for calling.", rows[0].Transcript)
	assert.Equal(t, "c-3", rows[1].CallID)
}

func TestLoadFillsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{"Transcript"},
		{"hello there"},
	})

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "row-1", rows[0].CallID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.xlsx")
	writeWorkbook(t, empty, [][]interface{}{{"Transcript"}})
	_, err = Load(empty)
	assert.Error(t, err)
}

func TestWriteReportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	calls := []AnalyzedCall{
		{
			CallID: "c-9",
			Result: types.AnalysisResult{
				OverallRating: types.RatingGood,
				OverallScore:  8.2,
				Sentiment:     types.SentimentResult{Overall: "positive"},
				Intent:        types.IntentResult{Primary: "enrollment"},
				Disposition:   types.DispositionResult{Disposition: "sale"},
				BusinessConversion: types.BusinessConversionResult{
					Outcome: "converted",
				},
			},
		},
	}
	require.NoError(t, WriteReport(path, calls))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Call ID", rows[0][0])
	assert.Equal(t, "c-9", rows[1][0])
	assert.Equal(t, "GOOD", rows[1][1])
	assert.Equal(t, "enrollment", rows[1][4])
}
