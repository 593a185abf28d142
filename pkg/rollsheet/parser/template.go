// Package parser reads xlsx templates into the document model and detects
// the record slots and header cells on them.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested template sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrInvalidTemplate indicates the template is not a readable xlsx document.
var ErrInvalidTemplate = errors.New("invalid xlsx template")

// defaultRowHeight is the height excelize reports for rows without a custom height.
const defaultRowHeight = 15

// Template is a loaded template sheet together with what was found on it.
type Template struct {
	// Sheet is an owned snapshot of the template sheet.
	Sheet *models.Sheet
	// Drawings counts the drawing objects of the sheet by kind.
	Drawings DrawingInventory
}

// LoadTemplateFile opens an xlsx file and loads one of its sheets.
func LoadTemplateFile(path, sheetName string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadTemplate(data, sheetName)
}

// LoadTemplate loads sheetName (or the first sheet when empty) from xlsx bytes.
func LoadTemplate(data []byte, sheetName string) (*Template, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidTemplate)
	}
	if sheetName == "" {
		sheetName = sheetList[0]
	} else if !containsSheet(sheetList, sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	sheet, err := ReadSheet(f, sheetName)
	if err != nil {
		return nil, err
	}

	// Drawing inventory is informational; a broken drawing part never fails a load.
	inv, err := ScanDrawings(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		inv = nil
	}

	return &Template{Sheet: sheet, Drawings: inv[sheetName]}, nil
}

// ReadSheet converts one excelize sheet into an owned document-model sheet:
// values, formulas, styles, merges, dimensions, pictures and print settings.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	sheet := models.NewSheet(sheetName)

	maxRow, maxCol, err := ExtractCells(f, sheetName, sheet)
	if err != nil {
		return nil, fmt.Errorf("read cells of %q: %w", sheetName, err)
	}

	merges, err := ExtractMerges(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read merges of %q: %w", sheetName, err)
	}
	sheet.Merges = merges
	for _, m := range merges {
		maxRow = max(maxRow, m.EndRow)
		maxCol = max(maxCol, m.EndCol)
	}
	if dim, err := f.GetSheetDimension(sheetName); err == nil {
		if r, ok := parseRange(dim); ok {
			maxRow = max(maxRow, r.EndRow)
			maxCol = max(maxCol, r.EndCol)
		}
	}

	if err := extractStyles(f, sheetName, sheet, maxRow, maxCol); err != nil {
		return nil, fmt.Errorf("read styles of %q: %w", sheetName, err)
	}
	extractDimensions(f, sheetName, sheet, maxRow, maxCol)

	images, err := ExtractImages(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read pictures of %q: %w", sheetName, err)
	}
	sheet.Images = images

	sheet.Page = extractPageSetup(f, sheetName)
	if panes, err := f.GetPanes(sheetName); err == nil && panes.Freeze {
		if cell, err := excelize.CoordinatesToCellName(panes.XSplit+1, panes.YSplit+1); err == nil {
			sheet.FreezeAt = cell
		}
	}

	if areas, err := ExtractPrintAreas(f); err == nil {
		sheet.PrintAreas = areas[sheetName]
	}

	return sheet, nil
}

// ExtractMerges returns the merged ranges of a sheet.
func ExtractMerges(f *excelize.File, sheetName string) ([]models.Range, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	result := make([]models.Range, 0, len(merged))
	for _, mc := range merged {
		r, ok := parseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis())
		if !ok {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// ExtractImages returns the pictures anchored on a sheet.
func ExtractImages(f *excelize.File, sheetName string) ([]models.Image, error) {
	cells, err := f.GetPictureCells(sheetName)
	if err != nil {
		return nil, err
	}
	var images []models.Image
	for _, cell := range cells {
		pics, err := f.GetPictures(sheetName, cell)
		if err != nil {
			return nil, err
		}
		for _, pic := range pics {
			img := models.Image{
				Cell:      cell,
				Extension: pic.Extension,
				Data:      pic.File,
			}
			if opts := pic.Format; opts != nil {
				img.AltText = opts.AltText
				img.ScaleX = opts.ScaleX
				img.ScaleY = opts.ScaleY
				img.OffsetX = opts.OffsetX
				img.OffsetY = opts.OffsetY
				img.Positioning = opts.Positioning
				img.LockAspectRatio = opts.LockAspectRatio
			}
			images = append(images, img)
		}
	}
	return images, nil
}

func extractStyles(f *excelize.File, sheetName string, sheet *models.Sheet, maxRow, maxCol int) error {
	cache := make(map[int]models.Style)
	for row := 1; row <= maxRow; row++ {
		for col := 1; col <= maxCol; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			id, err := f.GetCellStyle(sheetName, cellName)
			if err != nil {
				return err
			}
			if id == 0 {
				continue
			}
			st, ok := cache[id]
			if !ok {
				xs, err := f.GetStyle(id)
				if err != nil {
					return err
				}
				st = StyleFromExcelize(xs)
				cache[id] = st
			}
			if !st.IsZero() {
				sheet.SetStyle(col, row, st)
			}
		}
	}
	return nil
}

func extractDimensions(f *excelize.File, sheetName string, sheet *models.Sheet, maxRow, maxCol int) {
	for col := 1; col <= maxCol; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			continue
		}
		if w, err := f.GetColWidth(sheetName, name); err == nil && w > 0 {
			sheet.SetColWidth(col, w)
		}
	}
	for row := 1; row <= maxRow; row++ {
		if h, err := f.GetRowHeight(sheetName, row); err == nil && h > 0 && h != defaultRowHeight {
			sheet.SetRowHeight(row, h)
		}
	}
}

func extractPageSetup(f *excelize.File, sheetName string) models.PageSetup {
	var setup models.PageSetup
	if layout, err := f.GetPageLayout(sheetName); err == nil {
		if layout.Orientation != nil {
			setup.Orientation = *layout.Orientation
		}
		if layout.Size != nil {
			setup.PaperSize = *layout.Size
		}
		// Fit counts only apply when the sheet scales to fit.
		if props, err := f.GetSheetProps(sheetName); err == nil && props.FitToPage != nil && *props.FitToPage {
			if layout.FitToWidth != nil {
				setup.FitToWidth = *layout.FitToWidth
			}
			if layout.FitToHeight != nil {
				setup.FitToHeight = *layout.FitToHeight
			}
		}
	}
	if m, err := f.GetPageMargins(sheetName); err == nil && m.Left != nil {
		setup.Margins = &models.Margins{
			Left:   deref(m.Left),
			Right:  deref(m.Right),
			Top:    deref(m.Top),
			Bottom: deref(m.Bottom),
			Header: deref(m.Header),
			Footer: deref(m.Footer),
		}
	}
	return setup
}

// parseRange parses "A1:D10" (or a single "A1") into a range.
func parseRange(ref string) (models.Range, bool) {
	ref = strings.ReplaceAll(ref, "$", "")
	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Range{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.Range{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.Range{}, false
	}
	return models.NewRange(c1, r1, c2, r2), true
}

func containsSheet(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
