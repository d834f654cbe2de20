package models

// Status is the final state of a probe run.
type Status string

const (
	StatusFolderNotFound Status = "folder_not_found"
	StatusNoSpreadsheet  Status = "no_spreadsheet"
	StatusSucceeded      Status = "succeeded"
	StatusExhausted      Status = "exhausted"
	StatusInterrupted    Status = "interrupted"
)

// Report represents the result of a whole probe run.
type Report struct {
	// Folder is the document folder that was probed.
	Folder string `json:"folder"`
	// Spreadsheet is the first discovered spreadsheet file name (no path).
	Spreadsheet string `json:"spreadsheet,omitempty"`
	// Workbook is the optional pre-flight summary of Spreadsheet.
	Workbook *WorkbookSummary `json:"workbook,omitempty"`
	// Attempts lists every invocation in the order it was made.
	Attempts []Attempt `json:"attempts,omitempty"`
	// Status is the final state of the run.
	Status Status `json:"status"`
	// Error describes why no candidate was probed, for folder and discovery
	// problems.
	Error string `json:"error,omitempty"`
}

// Winner returns the successful attempt, if any.
func (r *Report) Winner() (Attempt, bool) {
	for _, a := range r.Attempts {
		if a.Succeeded() {
			return a, true
		}
	}
	return Attempt{}, false
}
