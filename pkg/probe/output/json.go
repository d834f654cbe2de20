// Package output serializes probe reports.
package output

import (
	"encoding/json"
	"os"

	"github.com/ukaji3/sfiaprobe-go/pkg/probe/models"
)

// ToJSON serializes a report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// WriteFile writes the JSON form of report to path.
func WriteFile(path string, report *models.Report, pretty bool) error {
	data, err := ToJSON(report, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
