package models

// NameSpan is the column range (1-based, inclusive) of the merged name cell
// that marks one record slot.
type NameSpan struct {
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
}

// DefaultNameSpan is columns C:E.
var DefaultNameSpan = NameSpan{StartCol: 3, EndCol: 5}

// ColumnMap maps logical record fields to 1-based sheet columns.
type ColumnMap struct {
	Number       int    `json:"number"`
	NameStart    int    `json:"name_start"`
	NameEnd      int    `json:"name_end"`
	ID           int    `json:"id"`
	Organization int    `json:"organization"`
	Role         int    `json:"role"`
	Phone        int    `json:"phone"`
	Gender       [3]int `json:"gender"`
	Sex          [3]int `json:"sex"`
	AgeRange     [3]int `json:"age_range"`
	Signature    int    `json:"signature"`
}

// ColumnsFor derives the column map from the position of the name span:
// the number column sits left of it and every other field follows it.
func ColumnsFor(span NameSpan) ColumnMap {
	c := span.EndCol
	return ColumnMap{
		Number:       span.StartCol - 1,
		NameStart:    span.StartCol,
		NameEnd:      span.EndCol,
		ID:           c + 1,
		Organization: c + 2,
		Role:         c + 3,
		Phone:        c + 4,
		Gender:       [3]int{c + 5, c + 6, c + 7},
		Sex:          [3]int{c + 8, c + 9, c + 10},
		AgeRange:     [3]int{c + 11, c + 12, c + 13},
		Signature:    c + 14,
	}
}

// First returns the leftmost mapped column.
func (m ColumnMap) First() int {
	if m.Number > 0 {
		return m.Number
	}
	return m.NameStart
}

// Last returns the rightmost mapped column.
func (m ColumnMap) Last() int {
	return m.Signature
}

// MarkColumns returns all nine mark columns in order.
func (m ColumnMap) MarkColumns() []int {
	cols := make([]int, 0, 9)
	cols = append(cols, m.Gender[:]...)
	cols = append(cols, m.Sex[:]...)
	return append(cols, m.AgeRange[:]...)
}

// TemplateLayout describes where record slots live on a sheet.
type TemplateLayout struct {
	// AnchorRow is the first data row (1-based).
	AnchorRow int `json:"anchor_row"`
	// SlotCount is the number of records a page can hold.
	SlotCount int `json:"slot_count"`
	// SlotRows lists the data rows in ascending order; len(SlotRows) == SlotCount.
	SlotRows []int `json:"slot_rows"`
	// Columns maps fields to columns.
	Columns ColumnMap `json:"columns"`
}

// DefaultAnchorRow and DefaultSlotCount describe the from-scratch layout.
const (
	DefaultAnchorRow = 11
	DefaultSlotCount = 16
)

// DefaultLayout returns the fixed from-scratch layout with the given page capacity.
// Slots are contiguous rows starting at DefaultAnchorRow.
func DefaultLayout(slotCount int) TemplateLayout {
	if slotCount <= 0 {
		slotCount = DefaultSlotCount
	}
	rows := make([]int, slotCount)
	for i := range rows {
		rows[i] = DefaultAnchorRow + i
	}
	return TemplateLayout{
		AnchorRow: DefaultAnchorRow,
		SlotCount: slotCount,
		SlotRows:  rows,
		Columns:   ColumnsFor(DefaultNameSpan),
	}
}

// LastRow returns the last data row, or AnchorRow-1 when there are no slots.
func (l TemplateLayout) LastRow() int {
	if len(l.SlotRows) == 0 {
		return l.AnchorRow - 1
	}
	return l.SlotRows[len(l.SlotRows)-1]
}

// Anchor is a header cell and the label written in front of its value.
type Anchor struct {
	// Cell is the target in A1 notation; empty means the field is not printed.
	Cell string `json:"cell,omitempty"`
	// Label prefixes the value, e.g. "Fecha: ".
	Label string `json:"label,omitempty"`
}

// HeaderAnchors holds where each report field is written on a page.
type HeaderAnchors struct {
	Date      Anchor `json:"date"`
	Place     Anchor `json:"place"`
	Start     Anchor `json:"start"`
	End       Anchor `json:"end"`
	Program   Anchor `json:"program"`
	Unit      Anchor `json:"unit"`
	Signatory Anchor `json:"signatory"`
	// Notes and Agreements are the merged free-text boxes; nil when absent.
	Notes      *Range `json:"notes,omitempty"`
	Agreements *Range `json:"agreements,omitempty"`
}
