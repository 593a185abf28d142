package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// CSV reads records from a comma separated file whose first row is a header.
// Semicolon separated files are detected from the header.
type CSV struct {
	Path string
	// Reader is used instead of Path when set.
	Reader io.Reader
}

// Records implements Source.
func (c *CSV) Records(ctx context.Context) ([]models.AttendanceRecord, error) {
	r := c.Reader
	if r == nil {
		f, err := os.Open(c.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	data = trimBOM(data)

	cr := csv.NewReader(bytesReader(data))
	cr.Comma = sniffComma(data)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty CSV %s", ErrNoRecords, c.Path)
	}
	return collect(rows[0], rows[1:])
}
