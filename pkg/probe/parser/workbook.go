// Package parser provides workbook inspection for probe pre-flight reports.
package parser

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/sfiaprobe-go/pkg/probe/models"
	"github.com/xuri/excelize/v2"
)

// SummarizeWorkbook opens the workbook at path and summarizes every sheet.
// Legacy .xls files are not readable by excelize and return an error.
func SummarizeWorkbook(path string) (*models.WorkbookSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary := &models.WorkbookSummary{
		BookName: filepath.Base(path),
	}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := SummarizeSheet(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		summary.Sheets = append(summary.Sheets, sheet)
	}

	return summary, nil
}

// SummarizeSheet counts non-empty rows on a sheet and computes its used range.
func SummarizeSheet(f *excelize.File, sheetName string) (models.SheetSummary, error) {
	summary := models.SheetSummary{Name: sheetName}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return summary, err
	}

	for _, row := range rows {
		if rowHasData(row) {
			summary.Rows++
		}
	}

	summary.UsedRange = usedRange(rows)
	return summary, nil
}

func rowHasData(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
