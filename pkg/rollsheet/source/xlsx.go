package source

import (
	"context"
	"fmt"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// XLSX reads records from a worksheet used as a database table. The table may
// start anywhere on the sheet; its first non-empty row is the header.
type XLSX struct {
	Path string
	// Sheet names the worksheet; empty means the first sheet.
	Sheet string
}

// Records implements Source.
func (x *XLSX) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, x.Path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, ok := dataBounds(rows)
	if !ok {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrNoRecords, sheet)
	}
	rows = crop(rows, b)
	return collect(rows[0], rows[1:])
}
