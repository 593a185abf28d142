package parser

import (
	"strings"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// headerLabel matches a label cell by lower-case prefix.
type headerLabel struct {
	prefixes []string
	// above is true for labels that live above the table, false for below.
	above bool
	set   func(*models.HeaderAnchors, models.Anchor)
}

var headerLabels = []headerLabel{
	{[]string{"fecha"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.Date = a }},
	{[]string{"lugar"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.Place = a }},
	{[]string{"hora inicio", "hora de inicio"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.Start = a }},
	{[]string{"hora finaliz", "hora fin", "hora de finaliz"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.End = a }},
	{[]string{"estrategia", "programa"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.Program = a }},
	{[]string{"dirección", "direccion", "delegación policial", "delegacion policial"}, true, func(h *models.HeaderAnchors, a models.Anchor) { h.Unit = a }},
	{[]string{"firma:", "nombre de quien firma", "firmante"}, false, func(h *models.HeaderAnchors, a models.Anchor) { h.Signatory = a }},
}

// DetectHeaderAnchors locates the report header cells of a template by their
// labels. Header labels are searched above the first slot row and the notes,
// agreements and signatory labels below the last one. A label inside a merge
// resolves to the merge's top-left cell. Labels that are not found leave the
// corresponding anchor empty.
func DetectHeaderAnchors(sheet *models.Sheet, layout models.TemplateLayout) models.HeaderAnchors {
	var anchors models.HeaderAnchors
	found := make(map[int]bool)

	for _, row := range sheet.RowNumbers() {
		for _, col := range sheet.ColumnNumbers(row) {
			text, ok := sheet.Value(col, row).(string)
			if !ok || strings.TrimSpace(text) == "" {
				continue
			}
			lower := strings.ToLower(strings.TrimSpace(text))
			above := row < layout.AnchorRow
			below := row > layout.LastRow()

			if below && anchors.Notes == nil && strings.HasPrefix(lower, "anotaciones") {
				anchors.Notes = boxBelow(sheet, col, row)
				continue
			}
			if below && anchors.Agreements == nil && strings.HasPrefix(lower, "acuerdos") {
				anchors.Agreements = boxBelow(sheet, col, row)
				continue
			}

			for i, hl := range headerLabels {
				if found[i] || (hl.above && !above) || (!hl.above && !below) {
					continue
				}
				if !hasAnyPrefix(lower, hl.prefixes) {
					continue
				}
				found[i] = true
				hl.set(&anchors, models.Anchor{
					Cell:  anchorCell(sheet, col, row),
					Label: labelText(text),
				})
				break
			}
		}
	}
	return anchors
}

// boxBelow returns the merge directly under a label, or the single cell there.
func boxBelow(sheet *models.Sheet, col, row int) *models.Range {
	if m, ok := sheet.MergeAt(col, row); ok {
		row = m.EndRow
	}
	if m, ok := sheet.MergeAt(col, row+1); ok {
		return &m
	}
	r := models.NewRange(col, row+1, col, row+1)
	return &r
}

// anchorCell returns the top-left cell of the merge holding (col, row).
func anchorCell(sheet *models.Sheet, col, row int) string {
	if m, ok := sheet.MergeAt(col, row); ok {
		col, row = m.StartCol, m.StartRow
	}
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// labelText normalizes "Fecha", "Fecha:" and "Fecha: ____" to "Fecha: ".
func labelText(text string) string {
	if i := strings.Index(text, ":"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text) + ": "
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
