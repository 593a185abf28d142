// Package writer renders a composed document to an xlsx container.
package writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/parser"
	"github.com/xuri/excelize/v2"
)

// Bytes renders doc and returns the xlsx bytes.
func Bytes(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write renders doc into w. Sheets are written in page order; nothing is
// written to w unless every sheet renders.
func Write(doc *models.Document, w io.Writer) error {
	if doc == nil || len(doc.Sheets) == 0 {
		return fmt.Errorf("document has no sheets")
	}

	f, err := Render(doc)
	if err != nil {
		return err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Render builds an excelize workbook from doc. The caller owns the result.
func Render(doc *models.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	r := &renderer{f: f, styles: make(map[models.Style]int)}

	for i, sheet := range doc.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}
		if err := r.sheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("render sheet %q: %w", sheet.Name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

type renderer struct {
	f      *excelize.File
	styles map[models.Style]int
}

func (r *renderer) sheet(s *models.Sheet) error {
	name := s.Name

	for col, width := range s.ColWidths {
		colName, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := r.f.SetColWidth(name, colName, colName, width); err != nil {
			return err
		}
	}

	for _, rowNum := range s.RowNumbers() {
		row := s.Rows[rowNum]
		if row.Height > 0 {
			if err := r.f.SetRowHeight(name, rowNum, row.Height); err != nil {
				return err
			}
		}
		for _, col := range s.ColumnNumbers(rowNum) {
			if err := r.cell(name, col, rowNum, row.Cells[col]); err != nil {
				return err
			}
		}
	}

	for _, m := range s.Merges {
		start, err := excelize.CoordinatesToCellName(m.StartCol, m.StartRow)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(m.EndCol, m.EndRow)
		if err != nil {
			return err
		}
		if err := r.f.MergeCell(name, start, end); err != nil {
			return err
		}
	}

	for _, img := range s.Images {
		if err := r.f.AddPictureFromBytes(name, img.Cell, &excelize.Picture{
			Extension: img.Extension,
			File:      img.Data,
			Format: &excelize.GraphicOptions{
				AltText:         img.AltText,
				ScaleX:          img.ScaleX,
				ScaleY:          img.ScaleY,
				OffsetX:         img.OffsetX,
				OffsetY:         img.OffsetY,
				Positioning:     img.Positioning,
				LockAspectRatio: img.LockAspectRatio,
			},
		}); err != nil {
			return fmt.Errorf("picture at %s: %w", img.Cell, err)
		}
	}

	if err := r.page(name, s.Page); err != nil {
		return err
	}
	if err := r.freeze(name, s.FreezeAt); err != nil {
		return err
	}
	if len(s.PrintAreas) > 0 {
		if err := r.f.SetDefinedName(&excelize.DefinedName{
			Name:     parser.PrintAreaName,
			RefersTo: parser.FormatPrintArea(name, s.PrintAreas),
			Scope:    name,
		}); err != nil {
			return fmt.Errorf("print area: %w", err)
		}
	}
	return nil
}

func (r *renderer) cell(sheet string, col, row int, c *models.Cell) error {
	if c == nil {
		return nil
	}
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	switch {
	case c.Formula != "":
		if err := r.f.SetCellFormula(sheet, cellName, c.Formula); err != nil {
			return err
		}
	case c.Value != nil:
		if err := r.f.SetCellValue(sheet, cellName, c.Value); err != nil {
			return err
		}
	}
	if c.Style.IsZero() {
		return nil
	}
	id, err := r.styleID(c.Style)
	if err != nil {
		return err
	}
	return r.f.SetCellStyle(sheet, cellName, cellName, id)
}

func (r *renderer) styleID(st models.Style) (int, error) {
	if id, ok := r.styles[st]; ok {
		return id, nil
	}
	id, err := r.f.NewStyle(StyleToExcelize(st))
	if err != nil {
		return 0, err
	}
	r.styles[st] = id
	return id, nil
}

func (r *renderer) page(sheet string, p models.PageSetup) error {
	var opts excelize.PageLayoutOptions
	set := false
	if p.Orientation != "" {
		opts.Orientation = &p.Orientation
		set = true
	}
	if p.PaperSize > 0 {
		opts.Size = &p.PaperSize
		set = true
	}
	if p.FitToWidth > 0 || p.FitToHeight > 0 {
		fit := true
		if err := r.f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
			return err
		}
		opts.FitToWidth = &p.FitToWidth
		opts.FitToHeight = &p.FitToHeight
		set = true
	}
	if set {
		if err := r.f.SetPageLayout(sheet, &opts); err != nil {
			return fmt.Errorf("page layout: %w", err)
		}
	}
	if m := p.Margins; m != nil {
		if err := r.f.SetPageMargins(sheet, &excelize.PageLayoutMarginsOptions{
			Left:   &m.Left,
			Right:  &m.Right,
			Top:    &m.Top,
			Bottom: &m.Bottom,
			Header: &m.Header,
			Footer: &m.Footer,
		}); err != nil {
			return fmt.Errorf("page margins: %w", err)
		}
	}
	return nil
}

func (r *renderer) freeze(sheet, cell string) error {
	if cell == "" {
		return nil
	}
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return err
	}
	panes := &excelize.Panes{
		Freeze:      true,
		XSplit:      col - 1,
		YSplit:      row - 1,
		TopLeftCell: cell,
		ActivePane:  "bottomRight",
	}
	switch {
	case panes.XSplit == 0 && panes.YSplit == 0:
		return nil
	case panes.XSplit == 0:
		panes.ActivePane = "bottomLeft"
	case panes.YSplit == 0:
		panes.ActivePane = "topRight"
	}
	return r.f.SetPanes(sheet, panes)
}
