package models

import "fmt"

// Cell is a single styled cell of a sheet.
type Cell struct {
	// Value is a string, integer, float, bool or time value; nil means blank.
	Value any `json:"v,omitempty"`
	// Formula is copied verbatim from templates; it is never evaluated.
	Formula string `json:"f,omitempty"`
	// Style is the cell style; the zero value is the workbook default.
	Style Style `json:"-"`
}

// Row holds the cells of one sheet row keyed by 1-based column.
type Row struct {
	// Height is the row height in points; 0 means default.
	Height float64       `json:"h,omitempty"`
	Cells  map[int]*Cell `json:"c"`
}

// Range is a rectangular block of cells (1-based, inclusive).
type Range struct {
	StartCol int `json:"c1"`
	StartRow int `json:"r1"`
	EndCol   int `json:"c2"`
	EndRow   int `json:"r2"`
}

// NewRange builds a normalized range from two corners.
func NewRange(col1, row1, col2, row2 int) Range {
	if col2 < col1 {
		col1, col2 = col2, col1
	}
	if row2 < row1 {
		row1, row2 = row2, row1
	}
	return Range{StartCol: col1, StartRow: row1, EndCol: col2, EndRow: row2}
}

// Contains reports whether the cell is inside r.
func (r Range) Contains(col, row int) bool {
	return col >= r.StartCol && col <= r.EndCol && row >= r.StartRow && row <= r.EndRow
}

// Overlaps reports whether r and o share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.StartCol <= o.EndCol && o.StartCol <= r.EndCol &&
		r.StartRow <= o.EndRow && o.StartRow <= r.EndRow
}

// SingleRow reports whether r spans exactly one row.
func (r Range) SingleRow() bool {
	return r.StartRow == r.EndRow
}

// String returns r in A1 notation, e.g. "B9:E10".
func (r Range) String() string {
	return fmt.Sprintf("%s%d:%s%d", columnName(r.StartCol), r.StartRow, columnName(r.EndCol), r.EndRow)
}

func columnName(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}
