package parser

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/xuri/excelize/v2"
)

const fixtureSheet = "Lista"

// pngBytes returns a small solid PNG image.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(8, 4, color.NRGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

// buildTemplate creates an attendance template with five slots on rows 11-15,
// header labels on rows 6-8, notes boxes below the table, a logo, a formula
// and a print area.
func buildTemplate(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", fixtureSheet); err != nil {
		t.Fatalf("Failed to rename sheet: %v", err)
	}
	s := fixtureSheet
	set := func(cell string, v any) {
		if err := f.SetCellValue(s, cell, v); err != nil {
			t.Fatalf("Failed to set %s: %v", cell, err)
		}
	}
	merge := func(a, b string) {
		if err := f.MergeCell(s, a, b); err != nil {
			t.Fatalf("Failed to merge %s:%s: %v", a, b, err)
		}
	}

	set("B6", "Fecha:")
	set("E6", "Lugar:")
	merge("E6", "I6")
	set("J6", "Hora Inicio:")
	set("Q6", "Hora Finalización:")
	set("B7", "Estrategia o Programa:")
	merge("B7", "G7")
	set("B8", "Dirección / Delegación Policial:")

	set("B9", "Nº")
	set("C9", "Nombre")
	merge("C9", "E10")
	set("F9", "Cédula de Identidad")
	for row := 11; row <= 15; row++ {
		merge(cellName(t, 3, row), cellName(t, 5, row))
	}
	set("T11", "keep")
	if err := f.SetCellFormula(s, "T1", "ROWS(C11:C15)"); err != nil {
		t.Fatalf("Failed to set formula: %v", err)
	}

	set("B17", "Anotaciones Generales")
	set("K17", "Acuerdos")
	merge("B18", "J25")
	merge("K18", "S25")
	set("B27", "Firma:")
	merge("B27", "G27")

	bold, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "left", Color: "000000", Style: 1}},
	})
	if err != nil {
		t.Fatalf("Failed to create style: %v", err)
	}
	if err := f.SetCellStyle(s, "B6", "B6", bold); err != nil {
		t.Fatalf("Failed to set style: %v", err)
	}
	if err := f.SetColWidth(s, "C", "E", 22); err != nil {
		t.Fatalf("Failed to set width: %v", err)
	}
	if err := f.SetRowHeight(s, 7, 30); err != nil {
		t.Fatalf("Failed to set height: %v", err)
	}

	if err := f.AddPictureFromBytes(s, "B2", &excelize.Picture{
		Extension: ".png",
		File:      pngBytes(t),
		Format:    &excelize.GraphicOptions{AltText: "logo"},
	}); err != nil {
		t.Fatalf("Failed to add picture: %v", err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     PrintAreaName,
		RefersTo: "'Lista'!$A$1:$S$27",
		Scope:    s,
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
	return buf.Bytes()
}

func cellName(t *testing.T, col, row int) string {
	t.Helper()
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		t.Fatalf("Invalid cell: %v", err)
	}
	return name
}
