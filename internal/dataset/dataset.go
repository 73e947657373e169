// Package dataset loads batches of call transcripts from an xlsx workbook
// and writes analysis report workbooks. Column positions are auto-detected
// from header names, since exported sheets rarely agree on ordering.
package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-insights-go/internal/types"
)

type CallRow struct {
	CallID     string `json:"call_id"`
	Transcript string `json:"transcript"`
}

// AnalyzedCall pairs a call id with its finished analysis for reporting.
type AnalyzedCall struct {
	CallID string               `json:"call_id"`
	Result types.AnalysisResult `json:"result"`
}

// Load reads call rows from the first sheet, detecting the id and transcript
// columns by header heuristics. Rows with an empty transcript are skipped.
func Load(path string) ([]CallRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idIdx, textIdx := -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case textIdx == -1 && (strings.Contains(l, "transcript") || strings.Contains(l, "text")):
			textIdx = i
		case idIdx == -1 && (strings.Contains(l, "call id") || strings.Contains(l, "callid") || l == "id"):
			idIdx = i
		}
	}
	if textIdx == -1 {
		// exported sheets usually carry the transcript last
		textIdx = len(rows[0]) - 1
	}

	var out []CallRow
	for i, r := range rows {
		if i == 0 {
			continue
		}
		row := CallRow{}
		if idIdx >= 0 && idIdx < len(r) {
			row.CallID = strings.TrimSpace(r[idIdx])
		}
		if row.CallID == "" {
			row.CallID = fmt.Sprintf("row-%d", i)
		}
		if textIdx >= 0 && textIdx < len(r) {
			row.Transcript = strings.TrimSpace(r[textIdx])
		}
		if row.Transcript == "" {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

var reportHeader = []string{
	"Call ID", "Rating", "Overall Score", "Sentiment", "Intent",
	"Disposition", "Conversion Outcome", "Facts Extracted", "Summary",
}

// WriteReport writes one row per analyzed call to a new workbook at path.
func WriteReport(path string, calls []AnalyzedCall) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, c := range calls {
		values := []interface{}{
			c.CallID,
			string(c.Result.OverallRating),
			c.Result.OverallScore,
			c.Result.Sentiment.Overall,
			c.Result.Intent.Primary,
			c.Result.Disposition.Disposition,
			c.Result.BusinessConversion.Outcome,
			len(c.Result.Extraction.ExtractedFacts),
			c.Result.Summary.Summary,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("report cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
