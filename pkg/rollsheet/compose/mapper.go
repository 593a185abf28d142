package compose

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// DefaultMarkSymbol marks the selected column of a category group.
const DefaultMarkSymbol = "X"

// DefaultMethodMarker is written into the signature column of every filled row.
const DefaultMethodMarker = "Virtual"

// Mapper writes one record into one slot row.
type Mapper struct {
	Columns models.ColumnMap
	// MarkSymbol is written into the matching category column.
	MarkSymbol string
	// MethodMarker is written into the signature column; empty writes nothing.
	MethodMarker string
	Logger       zerolog.Logger
}

// NewMapper returns a mapper with the default mark and method marker.
func NewMapper(cols models.ColumnMap) *Mapper {
	return &Mapper{
		Columns:      cols,
		MarkSymbol:   DefaultMarkSymbol,
		MethodMarker: DefaultMethodMarker,
		Logger:       zerolog.Nop(),
	}
}

// MapRecord writes rec into row. ordinal is the 1-based position of the record
// in the whole record set and goes into the number column.
//
// The name goes into the left cell of the row's name merge; when the row has
// no merge over the name columns one is created. Each category group gets at
// most one mark; values outside the known categories leave the group blank.
// The row is bordered across all mapped columns once every field is written.
func (m *Mapper) MapRecord(sheet *models.Sheet, row, ordinal int, rec models.AttendanceRecord) error {
	cols := m.Columns
	if row <= 0 {
		return fmt.Errorf("invalid slot row %d", row)
	}

	if cols.Number > 0 {
		sheet.SetValue(cols.Number, row, ordinal)
	}

	nameRange := models.NewRange(cols.NameStart, row, cols.NameEnd, row)
	if !sheet.HasMerge(nameRange) && !sheet.Merge(nameRange) {
		m.Logger.Debug().Int("row", row).Str("sheet", sheet.Name).
			Msg("name columns overlap another merge; writing name unmerged")
	}
	sheet.SetValue(cols.NameStart, row, rec.Name)

	sheet.SetValue(cols.ID, row, rec.IDNumber)
	sheet.SetValue(cols.Organization, row, rec.Organization)
	sheet.SetValue(cols.Role, row, rec.Role)
	sheet.SetValue(cols.Phone, row, rec.Phone)

	m.mark(sheet, row, cols.Gender, rec.Gender.Index(), "gender", string(rec.Gender))
	m.mark(sheet, row, cols.Sex, rec.Sex.Index(), "sex", string(rec.Sex))
	m.mark(sheet, row, cols.AgeRange, rec.AgeRange.Index(), "age_range", string(rec.AgeRange))

	if m.MethodMarker != "" {
		sheet.SetValue(cols.Signature, row, m.MethodMarker)
	}

	m.styleRow(sheet, row)
	return nil
}

// mark clears the group and marks the column at idx; idx < 0 marks nothing.
func (m *Mapper) mark(sheet *models.Sheet, row int, group [3]int, idx int, field, raw string) {
	for _, col := range group {
		sheet.SetValue(col, row, nil)
	}
	if idx < 0 {
		if raw != "" {
			m.Logger.Debug().Str("field", field).Str("value", raw).Int("row", row).
				Msg("unmapped category value left unmarked")
		}
		return
	}
	sheet.SetValue(group[idx], row, m.MarkSymbol)
}

// styleRow borders the mapped columns of row and fills in alignment on cells
// that have none, so template alignment is left alone.
func (m *Mapper) styleRow(sheet *models.Sheet, row int) {
	cols := m.Columns
	sheet.UpdateStyles(models.NewRange(cols.First(), row, cols.Last(), row), func(st *models.Style) {
		st.Border = models.ThinBox
	})

	align := func(col int, a models.Alignment) {
		sheet.UpdateStyles(models.NewRange(col, row, col, row), func(st *models.Style) {
			if st.Alignment == (models.Alignment{}) {
				st.Alignment = a
			}
		})
	}
	if cols.Number > 0 {
		align(cols.Number, centerWrap)
	}
	align(cols.NameStart, leftWrap)
	for _, col := range cols.MarkColumns() {
		align(col, centerWrap)
	}
	align(cols.Signature, centerWrap)
}
