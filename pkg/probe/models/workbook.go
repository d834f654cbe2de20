package models

// WorkbookSummary represents a pre-flight view of a workbook.
type WorkbookSummary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheets in workbook order.
	Sheets []SheetSummary `json:"sheets"`
}

// SheetSummary represents the shape of the data on one sheet.
type SheetSummary struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Rows is the number of rows holding at least one non-empty cell.
	Rows int `json:"rows"`
	// UsedRange is the bounding range of non-empty cells (e.g. "A1:D10"),
	// empty for a blank sheet.
	UsedRange string `json:"used_range,omitempty"`
}
