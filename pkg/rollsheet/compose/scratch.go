// Package compose builds attendance pages: the from-scratch layout, the
// report header, the per-record field mapping and the pagination engine.
package compose

import (
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the base sheet name of from-scratch documents.
const DefaultSheetName = "Minuta"

// ActionLinesText is the fixed notice printed next to the program label.
const ActionLinesText = "AC... acción, acciones estratégicas, indicadores y metas."

// Fill colors of the table header.
const (
	headFill  = "DDE7FF"
	groupFill = "B7C6F9"
)

// Notes box geometry below the table.
const (
	notesGap    = 2 // blank rows between the last slot and the box labels
	notesHeight = 8 // rows per box
)

var scratchWidths = map[int]float64{
	1: 2, 2: 6, 3: 22, 4: 22, 5: 22, 6: 18, 7: 22,
	8: 20, 9: 16, 10: 6, 11: 6, 12: 10, 13: 6, 14: 6, 15: 6,
	16: 12, 17: 12, 18: 12, 19: 16,
}

var (
	titleStyle = models.Style{Font: models.Font{Bold: true, Size: 12}}
	headStyle  = models.Style{
		Font:      models.Font{Bold: true},
		Fill:      models.Fill{Pattern: 1, Color: headFill},
		Border:    models.ThinBox,
		Alignment: centerWrap,
	}
	groupStyle = models.Style{
		Font:      models.Font{Bold: true},
		Fill:      models.Fill{Pattern: 1, Color: groupFill},
		Border:    models.ThinBox,
		Alignment: centerWrap,
	}
	centerWrap = models.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	leftWrap   = models.Alignment{Horizontal: "left", Vertical: "center", WrapText: true}
	topLeft    = models.Alignment{Horizontal: "left", Vertical: "top", WrapText: true}
)

// ScratchAnchors returns the header cells of the from-scratch layout.
// The notes boxes sit below the last slot row of layout.
func ScratchAnchors(layout models.TemplateLayout) models.HeaderAnchors {
	labelRow := layout.LastRow() + notesGap
	notes := models.NewRange(2, labelRow+1, 10, labelRow+notesHeight)
	agreements := models.NewRange(11, labelRow+1, 19, labelRow+notesHeight)
	sig, _ := excelize.CoordinatesToCellName(2, labelRow+notesHeight+2)

	return models.HeaderAnchors{
		Date:       models.Anchor{Cell: "B6", Label: "Fecha: "},
		Place:      models.Anchor{Cell: "E6", Label: "Lugar:  "},
		Start:      models.Anchor{Cell: "J6", Label: "Hora Inicio: "},
		End:        models.Anchor{Cell: "Q6", Label: "Hora Finalización: "},
		Program:    models.Anchor{Cell: "B7", Label: "Estrategia o Programa: "},
		Unit:       models.Anchor{Cell: "E8"},
		Signatory:  models.Anchor{Cell: sig, Label: "Firma: "},
		Notes:      &notes,
		Agreements: &agreements,
	}
}

// BuildScratchSheet creates the base page of a document generated without a
// template: column widths, header block, two-row table header, bordered empty
// slots, notes boxes, freeze pane and print settings.
func BuildScratchSheet(name string, layout models.TemplateLayout) *models.Sheet {
	s := models.NewSheet(name)
	cols := layout.Columns

	for col, w := range scratchWidths {
		s.SetColWidth(col, w)
	}

	// Header block, rows 6-8.
	for _, cell := range []string{"B6", "E6", "J6", "Q6", "B7"} {
		setStyleAt(s, cell, titleStyle)
	}
	s.Merge(models.NewRange(5, 6, 9, 6))
	s.Merge(models.NewRange(2, 7, 7, 7))
	s.SetValue(8, 7, ActionLinesText)
	s.Merge(models.NewRange(8, 7, 19, 8))
	s.SetStyle(8, 7, models.Style{Alignment: leftWrap})
	s.SetValue(2, 8, "Dirección / Delegación Policial:")

	// Table header, two rows above the first slot.
	top, sub := layout.AnchorRow-2, layout.AnchorRow-1
	s.StyleRange(models.NewRange(cols.First(), top, cols.Last(), sub), models.Style{Border: models.ThinBox})

	if cols.Number > 0 {
		s.Merge(models.NewRange(cols.Number, top, cols.Number, sub))
		s.SetValue(cols.Number, top, "Nº")
		s.StyleRange(models.NewRange(cols.Number, top, cols.Number, sub), groupStyle)
	}
	s.Merge(models.NewRange(cols.NameStart, top, cols.NameEnd, sub))
	s.SetValue(cols.NameStart, top, "Nombre")
	s.StyleRange(models.NewRange(cols.NameStart, top, cols.NameEnd, sub), groupStyle)

	singles := []struct {
		col   int
		label string
	}{
		{cols.ID, "Cédula de Identidad"},
		{cols.Organization, "Institución"},
		{cols.Role, "Cargo"},
		{cols.Phone, "Teléfono"},
		{cols.Signature, "FIRMA"},
	}
	for _, h := range singles {
		s.SetValue(h.col, top, h.label)
		s.SetStyle(h.col, top, headStyle)
	}

	groups := []struct {
		cols   [3]int
		label  string
		labels [3]string
	}{
		{cols.Gender, "Género", [3]string{string(models.GenderF), string(models.GenderM), string(models.GenderOther)}},
		{cols.Sex, "Sexo (Hombre, Mujer o Intersex)", [3]string{string(models.SexH), string(models.SexM), string(models.SexI)}},
		{cols.AgeRange, "Rango de Edad", [3]string{string(models.Age18To35), string(models.Age36To64), string(models.Age65Plus)}},
	}
	for _, g := range groups {
		s.Merge(models.NewRange(g.cols[0], top, g.cols[2], top))
		s.SetValue(g.cols[0], top, g.label)
		s.StyleRange(models.NewRange(g.cols[0], top, g.cols[2], top), groupStyle)
		for i, col := range g.cols {
			s.SetValue(col, sub, g.labels[i])
			s.SetStyle(col, sub, headStyle)
		}
	}

	// Empty slots are bordered up front so unused rows look like filled ones.
	for _, row := range layout.SlotRows {
		s.StyleRange(models.NewRange(cols.First(), row, cols.Last(), row), models.Style{Border: models.ThinBox})
		s.SetStyle(cols.Number, row, models.Style{Border: models.ThinBox, Alignment: centerWrap})
		for col := cols.NameStart; col <= cols.NameEnd; col++ {
			s.SetStyle(col, row, models.Style{Border: models.ThinBox, Alignment: leftWrap})
		}
		for _, col := range append(cols.MarkColumns(), cols.Signature) {
			s.SetStyle(col, row, models.Style{Border: models.ThinBox, Alignment: centerWrap})
		}
	}

	// Notes and agreements boxes.
	anchors := ScratchAnchors(layout)
	labelRow := anchors.Notes.StartRow - 1
	boxLabel := models.Style{Font: models.Font{Bold: true}}
	s.SetValue(anchors.Notes.StartCol, labelRow, "Anotaciones Generales")
	s.SetStyle(anchors.Notes.StartCol, labelRow, boxLabel)
	s.SetValue(anchors.Agreements.StartCol, labelRow, "Acuerdos")
	s.SetStyle(anchors.Agreements.StartCol, labelRow, boxLabel)
	for _, box := range []*models.Range{anchors.Notes, anchors.Agreements} {
		s.Merge(*box)
		s.StyleRange(*box, models.Style{Border: models.ThinBox, Alignment: topLeft})
	}

	_, sigRow, _ := excelize.CellNameToCoordinates(anchors.Signatory.Cell)
	s.Merge(models.NewRange(2, sigRow, 7, sigRow))

	s.FreezeAt, _ = excelize.CoordinatesToCellName(cols.NameStart, layout.AnchorRow)
	s.Page = models.PageSetup{
		Orientation: "landscape",
		FitToWidth:  1,
		Margins:     &models.Margins{Left: 0.4, Right: 0.4, Top: 0.5, Bottom: 0.5, Header: 0.3, Footer: 0.3},
	}
	s.PrintAreas = []models.Range{models.NewRange(1, 1, cols.Last(), sigRow)}

	return s
}

func setStyleAt(s *models.Sheet, cell string, st models.Style) {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return
	}
	s.SetStyle(col, row, st)
}
