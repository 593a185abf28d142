package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells copies the non-empty cell values and formulas of a sheet into
// dst. It returns the last row and column that hold data.
func ExtractCells(f *excelize.File, sheetName string, dst *models.Sheet) (maxRow, maxCol int, err error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, 0, err
	}

	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		for colIdx, cellValue := range row {
			colNum := colIdx + 1
			cellName, _ := excelize.CoordinatesToCellName(colNum, rowNum)

			formula, ferr := f.GetCellFormula(sheetName, cellName)
			if ferr == nil && formula != "" {
				dst.SetFormula(colNum, rowNum, formula)
				maxRow, maxCol = max(maxRow, rowNum), max(maxCol, colNum)
				continue
			}
			if cellValue == "" {
				continue
			}
			dst.SetValue(colNum, rowNum, parseValue(cellValue))
			maxRow, maxCol = max(maxRow, rowNum), max(maxCol, colNum)
		}
	}

	return maxRow, maxCol, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Digit strings with a leading zero (identity numbers, phones) stay strings.
func parseValue(s string) interface{} {
	if len(s) > 1 && strings.HasPrefix(s, "0") && !strings.HasPrefix(s, "0.") {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
