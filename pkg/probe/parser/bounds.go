package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// usedRange returns the bounding range of non-empty cells in Excel notation,
// or "" when every cell is empty.
func usedRange(rows [][]string) string {
	minRow, maxRow, minCol, maxCol := dataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// dataBounds finds the 0-based bounding box of non-empty cells.
// All four values are -1 when there is no data.
func dataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
