package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// SpreadsheetSuffixes are the file name suffixes recognized as spreadsheets.
var SpreadsheetSuffixes = []string{".xlsx", ".xls"}

// IsSpreadsheet reports whether name ends in a recognized spreadsheet suffix.
func IsSpreadsheet(name string) bool {
	for _, suffix := range SpreadsheetSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// FindSpreadsheets lists spreadsheet file names in folder, sorted by name.
// It returns ErrFolderNotFound when folder does not exist or is not a directory.
func FindSpreadsheets(folder string) ([]string, error) {
	info, err := os.Stat(folder)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folder)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFolderNotFound, folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSpreadsheet(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
