package models

import (
	"fmt"
	"sort"

	"github.com/tiendc/go-deepcopy"
)

// Sheet is one page of the document: a sparse grid of styled cells plus the
// merges, images and print settings that belong to it.
type Sheet struct {
	Name string `json:"name"`
	// Rows maps 1-based row numbers to rows.
	Rows map[int]*Row `json:"rows"`
	// Merges lists merged ranges in insertion order.
	Merges []Range `json:"merges,omitempty"`
	// ColWidths maps 1-based columns to widths in characters.
	ColWidths map[int]float64 `json:"col_widths,omitempty"`
	Images    []Image         `json:"images,omitempty"`
	Page      PageSetup       `json:"page"`
	// PrintAreas are the user-defined print ranges of this sheet.
	PrintAreas []Range `json:"print_areas,omitempty"`
	// FreezeAt is the first unfrozen cell in A1 notation, empty for none.
	FreezeAt string `json:"freeze_at,omitempty"`
}

// NewSheet returns an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{
		Name:      name,
		Rows:      make(map[int]*Row),
		ColWidths: make(map[int]float64),
	}
}

// Clone returns a deep copy of s under a new name. The copy owns all of its
// storage; writes to either sheet never show through to the other.
func (s *Sheet) Clone(name string) (*Sheet, error) {
	var dup Sheet
	if err := deepcopy.Copy(&dup, *s); err != nil {
		return nil, fmt.Errorf("clone sheet %q: %w", s.Name, err)
	}
	if dup.Rows == nil {
		dup.Rows = make(map[int]*Row)
	}
	if dup.ColWidths == nil {
		dup.ColWidths = make(map[int]float64)
	}
	dup.Name = name
	return &dup, nil
}

// Cell returns the cell at (col, row) or nil when it was never written.
func (s *Sheet) Cell(col, row int) *Cell {
	r, ok := s.Rows[row]
	if !ok {
		return nil
	}
	return r.Cells[col]
}

func (s *Sheet) ensureCell(col, row int) *Cell {
	r, ok := s.Rows[row]
	if !ok {
		r = &Row{Cells: make(map[int]*Cell)}
		s.Rows[row] = r
	}
	if r.Cells == nil {
		r.Cells = make(map[int]*Cell)
	}
	c, ok := r.Cells[col]
	if !ok {
		c = &Cell{}
		r.Cells[col] = c
	}
	return c
}

// SetValue writes v into (col, row), keeping the cell style.
func (s *Sheet) SetValue(col, row int, v any) {
	c := s.ensureCell(col, row)
	c.Value = v
	c.Formula = ""
}

// SetFormula stores a formula verbatim.
func (s *Sheet) SetFormula(col, row int, formula string) {
	s.ensureCell(col, row).Formula = formula
}

// Value returns the value at (col, row), nil for blank cells.
func (s *Sheet) Value(col, row int) any {
	if c := s.Cell(col, row); c != nil {
		return c.Value
	}
	return nil
}

// Text returns the value at (col, row) formatted as a string.
func (s *Sheet) Text(col, row int) string {
	v := s.Value(col, row)
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// SetStyle replaces the style of (col, row).
func (s *Sheet) SetStyle(col, row int, st Style) {
	s.ensureCell(col, row).Style = st
}

// StyleRange replaces the style of every cell in r.
func (s *Sheet) StyleRange(r Range, st Style) {
	s.UpdateStyles(r, func(cur *Style) { *cur = st })
}

// UpdateStyles calls fn on the style of every cell in r, creating cells as needed.
func (s *Sheet) UpdateStyles(r Range, fn func(*Style)) {
	for row := r.StartRow; row <= r.EndRow; row++ {
		for col := r.StartCol; col <= r.EndCol; col++ {
			fn(&s.ensureCell(col, row).Style)
		}
	}
}

// ClearValues blanks every cell in r and keeps styles.
func (s *Sheet) ClearValues(r Range) {
	for row := r.StartRow; row <= r.EndRow; row++ {
		sr, ok := s.Rows[row]
		if !ok {
			continue
		}
		for col, c := range sr.Cells {
			if col >= r.StartCol && col <= r.EndCol {
				c.Value = nil
				c.Formula = ""
			}
		}
	}
}

// Merge adds a merged range. It returns false and leaves the sheet untouched
// when r overlaps an existing merge.
func (s *Sheet) Merge(r Range) bool {
	for _, m := range s.Merges {
		if m.Overlaps(r) {
			return false
		}
	}
	s.Merges = append(s.Merges, r)
	return true
}

// MergeAt returns the merge containing (col, row).
func (s *Sheet) MergeAt(col, row int) (Range, bool) {
	for _, m := range s.Merges {
		if m.Contains(col, row) {
			return m, true
		}
	}
	return Range{}, false
}

// HasMerge reports whether r is exactly one of the sheet merges.
func (s *Sheet) HasMerge(r Range) bool {
	for _, m := range s.Merges {
		if m == r {
			return true
		}
	}
	return false
}

// SetColWidth sets the width of a column.
func (s *Sheet) SetColWidth(col int, width float64) {
	s.ColWidths[col] = width
}

// SetRowHeight sets the height of a row.
func (s *Sheet) SetRowHeight(row int, height float64) {
	r, ok := s.Rows[row]
	if !ok {
		r = &Row{Cells: make(map[int]*Cell)}
		s.Rows[row] = r
	}
	r.Height = height
}

// AddImage anchors an image on the sheet.
func (s *Sheet) AddImage(img Image) {
	s.Images = append(s.Images, img)
}

// RowNumbers returns the populated row numbers in ascending order.
func (s *Sheet) RowNumbers() []int {
	rows := make([]int, 0, len(s.Rows))
	for r := range s.Rows {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// ColumnNumbers returns the populated columns of row in ascending order.
func (s *Sheet) ColumnNumbers(row int) []int {
	r, ok := s.Rows[row]
	if !ok {
		return nil
	}
	cols := make([]int, 0, len(r.Cells))
	for c := range r.Cells {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}
