package compose

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, perPage, want int
	}{
		{0, 16, 1},
		{1, 16, 1},
		{16, 16, 1},
		{17, 16, 2},
		{20, 16, 2},
		{32, 16, 2},
		{33, 16, 3},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageCount(tt.n, tt.perPage), "PageCount(%d, %d)", tt.n, tt.perPage)
	}
}

func TestPageName(t *testing.T) {
	assert.Equal(t, "Minuta", PageName("Minuta", 0))
	assert.Equal(t, "Minuta 2", PageName("Minuta", 1))
	assert.Equal(t, "Minuta 10", PageName("Minuta", 9))

	long := strings.Repeat("Asistencia", 4)
	assert.Len(t, []rune(PageName(long, 0)), 31)
	name := PageName(long, 11)
	assert.Len(t, []rune(name), 31)
	assert.True(t, strings.HasSuffix(name, " 12"))
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "Lista 2026 03", SanitizeSheetName("Lista 2026/03"))
	assert.Equal(t, "A B", SanitizeSheetName("'A[B'"))
	assert.Equal(t, DefaultSheetName, SanitizeSheetName("  "))
}

func TestPaginateBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		records   int
		wantPages int
		lastRows  int
	}{
		{"empty input", 0, 1, 0},
		{"exactly one page", 16, 1, 16},
		{"one over", 17, 2, 1},
		{"twenty records", 20, 2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, base := scratchEngine(16)
			doc, err := paginate(e, base, makeRecords(tt.records))
			require.NoError(t, err)
			require.Len(t, doc.Sheets, tt.wantPages)

			last := doc.Sheets[len(doc.Sheets)-1]
			cols := e.Layout.Columns
			filled := 0
			for _, row := range e.Layout.SlotRows {
				if last.Text(cols.NameStart, row) != "" {
					filled++
				}
			}
			assert.Equal(t, tt.lastRows, filled)
		})
	}
}

func TestPaginateTwentyRecords(t *testing.T) {
	e, base := scratchEngine(16)
	records := makeRecords(20)

	doc, err := paginate(e, base, records)
	require.NoError(t, err)
	require.Equal(t, []string{"Minuta", "Minuta 2"}, doc.SheetNames())

	cols := e.Layout.Columns
	first, second := doc.Sheets[0], doc.Sheets[1]

	assert.Equal(t, "Persona 01", first.Text(cols.NameStart, 11))
	assert.Equal(t, "Persona 16", first.Text(cols.NameStart, 26))
	assert.Equal(t, "Persona 17", second.Text(cols.NameStart, 11))
	assert.Equal(t, "Persona 20", second.Text(cols.NameStart, 14))
	assert.Equal(t, 17, second.Value(cols.Number, 11))

	// Rows 15-26 of the second page are blank but bordered.
	for row := 15; row <= 26; row++ {
		assert.Nil(t, second.Value(cols.NameStart, row), "row %d", row)
		assert.Nil(t, second.Value(cols.Signature, row), "row %d", row)
		assert.Equal(t, models.ThinBox, second.Cell(cols.ID, row).Style.Border, "row %d", row)
	}
}

func TestPaginatePreservesOrderWithoutDuplicates(t *testing.T) {
	e, base := scratchEngine(7)
	records := makeRecords(50)

	doc, err := paginate(e, base, records)
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 8)

	var names []string
	for _, s := range doc.Sheets {
		for _, row := range e.Layout.SlotRows {
			if name := s.Text(e.Layout.Columns.NameStart, row); name != "" {
				names = append(names, name)
			}
		}
	}
	require.Len(t, names, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.Name, names[i])
	}
}

func TestPaginateWritesHeaderOnEveryPage(t *testing.T) {
	e, base := scratchEngine(4)
	doc, err := paginate(e, base, makeRecords(10))
	require.NoError(t, err)
	require.Len(t, doc.Sheets, 3)

	for _, s := range doc.Sheets {
		assert.Equal(t, "Fecha: 5 marzo 2026", s.Text(2, 6), s.Name)
		assert.Equal(t, "Lugar:  Sala 2", s.Text(5, 6), s.Name)
		assert.Equal(t, "Hora Inicio: 09:30", s.Text(10, 6), s.Name)
		assert.Equal(t, "Hora Finalización: 11:00", s.Text(17, 6), s.Name)
		assert.Equal(t, "Sin novedades", s.Text(e.Anchors.Notes.StartCol, e.Anchors.Notes.StartRow), s.Name)
		assert.Equal(t, "Reunión mensual", s.Text(e.Anchors.Agreements.StartCol, e.Anchors.Agreements.StartRow), s.Name)
	}
}

func TestPaginateIsDeterministic(t *testing.T) {
	render := func(workers int) *models.Document {
		e, base := scratchEngine(3)
		e.Workers = workers
		doc, err := paginate(e, base, makeRecords(11))
		require.NoError(t, err)
		return doc
	}

	serial, parallel := render(1), render(8)
	require.Equal(t, serial.SheetNames(), parallel.SheetNames())
	for i := range serial.Sheets {
		assert.Equal(t, serial.Sheets[i], parallel.Sheets[i])
	}
}

func TestPaginatePagesDoNotShareStorage(t *testing.T) {
	e, base := scratchEngine(2)
	doc, err := paginate(e, base, makeRecords(4))
	require.NoError(t, err)

	doc.Sheets[1].SetValue(3, 11, "changed")
	assert.Equal(t, "Persona 01", doc.Sheets[0].Text(3, 11))
}

func TestPaginateClearsTemplateSampleRows(t *testing.T) {
	layout := models.DefaultLayout(3)
	base := BuildScratchSheet("Lista", layout)
	base.SetValue(layout.Columns.NameStart, 13, "Ejemplo")
	base.SetValue(layout.Columns.Gender[0], 13, "X")

	e := &Engine{
		Layout:  layout,
		Anchors: ScratchAnchors(layout),
		Header:  NewHeaderInjector("es"),
		Mapper:  NewMapper(layout.Columns),
	}
	doc, err := paginate(e, base, makeRecords(4))
	require.NoError(t, err)

	assert.Equal(t, "Persona 03", doc.Sheets[0].Text(layout.Columns.NameStart, 13))
	assert.Nil(t, doc.Sheets[1].Value(layout.Columns.NameStart, 13))
	assert.Nil(t, doc.Sheets[1].Value(layout.Columns.Gender[0], 13))
}

func TestPaginateRejectsShortLayout(t *testing.T) {
	e, base := scratchEngine(4)
	e.Layout.SlotRows = e.Layout.SlotRows[:2]

	_, err := paginate(e, base, makeRecords(3))
	assert.Error(t, err)
}

func TestPaginateHonorsCancellation(t *testing.T) {
	e, base := scratchEngine(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Paginate(ctx, base, makeRecords(10), reportContext())
	assert.ErrorIs(t, err, context.Canceled)
}
