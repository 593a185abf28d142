package compose

import (
	"fmt"
	"time"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

var monthNames = [][12]string{
	{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
	language.Portuguese,
})

// HeaderInjector writes the report context onto a page.
type HeaderInjector struct {
	months [12]string
}

// NewHeaderInjector returns an injector printing month names for locale
// (a BCP 47 tag such as "es", "es-CR" or "en"). Unsupported locales fall back
// to Spanish.
func NewHeaderInjector(locale string) *HeaderInjector {
	tag, _ := language.Parse(locale)
	_, idx, _ := localeMatcher.Match(tag)
	return &HeaderInjector{months: monthNames[idx]}
}

// FormatDate renders d as "<day> <month> <year>".
func (h *HeaderInjector) FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day(), h.months[d.Month()-1], d.Year())
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

// Inject writes every report field that has an anchor. It must run before the
// record rows of the page are filled.
func (h *HeaderInjector) Inject(sheet *models.Sheet, anchors models.HeaderAnchors, rc models.ReportContext) error {
	fields := []struct {
		anchor models.Anchor
		value  string
	}{
		{anchors.Date, h.FormatDate(rc.Date)},
		{anchors.Place, rc.Place},
		{anchors.Start, formatClock(rc.Start)},
		{anchors.End, formatClock(rc.End)},
		{anchors.Program, rc.Program},
		{anchors.Unit, rc.Unit},
		{anchors.Signatory, rc.Signatory},
	}
	for _, f := range fields {
		if f.anchor.Cell == "" {
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(f.anchor.Cell)
		if err != nil {
			return fmt.Errorf("header cell %q: %w", f.anchor.Cell, err)
		}
		text := f.anchor.Label + f.value
		if text == "" {
			continue
		}
		sheet.SetValue(col, row, text)
	}

	writeBox(sheet, anchors.Notes, rc.Notes)
	writeBox(sheet, anchors.Agreements, rc.Agreements)
	return nil
}

// writeBox fills a free-text box; the box is bordered even when text is empty.
func writeBox(sheet *models.Sheet, box *models.Range, text string) {
	if box == nil {
		return
	}
	sheet.UpdateStyles(*box, func(st *models.Style) {
		st.Border = models.ThinBox
	})
	sheet.UpdateStyles(models.NewRange(box.StartCol, box.StartRow, box.StartCol, box.StartRow), func(st *models.Style) {
		st.Alignment = topLeft
	})
	if text == "" {
		sheet.SetValue(box.StartCol, box.StartRow, nil)
		return
	}
	sheet.SetValue(box.StartCol, box.StartRow, text)
}
