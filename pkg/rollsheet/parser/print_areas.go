package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name holding a sheet print area.
const PrintAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) (map[string][]models.Range, error) {
	result := make(map[string][]models.Range)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.Range) {
	var areas []models.Range
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.ReplaceAll(strings.Trim(part[:idx], "'"), "''", "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// FormatPrintArea renders a print area reference for sheetName.
func FormatPrintArea(sheetName string, areas []models.Range) string {
	quoted := "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
	refs := make([]string, 0, len(areas))
	for _, a := range areas {
		c1, _ := excelize.ColumnNumberToName(a.StartCol)
		c2, _ := excelize.ColumnNumberToName(a.EndCol)
		refs = append(refs, quoted+"!$"+c1+"$"+strconv.Itoa(a.StartRow)+":$"+c2+"$"+strconv.Itoa(a.EndRow))
	}
	return strings.Join(refs, ",")
}
