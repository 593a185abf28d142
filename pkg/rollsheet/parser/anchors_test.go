package parser

import (
	"testing"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

func TestDetectHeaderAnchors(t *testing.T) {
	tpl, err := LoadTemplate(buildTemplate(t), fixtureSheet)
	if err != nil {
		t.Fatalf("LoadTemplate failed: %v", err)
	}
	layout, err := DetectLayout(tpl.Sheet, models.DefaultNameSpan)
	if err != nil {
		t.Fatalf("DetectLayout failed: %v", err)
	}

	a := DetectHeaderAnchors(tpl.Sheet, layout)

	tests := []struct {
		name  string
		got   models.Anchor
		cell  string
		label string
	}{
		{"date", a.Date, "B6", "Fecha: "},
		{"place", a.Place, "E6", "Lugar: "},
		{"start", a.Start, "J6", "Hora Inicio: "},
		{"end", a.End, "Q6", "Hora Finalización: "},
		{"program", a.Program, "B7", "Estrategia o Programa: "},
		{"unit", a.Unit, "B8", "Dirección / Delegación Policial: "},
		{"signatory", a.Signatory, "B27", "Firma: "},
	}
	for _, tt := range tests {
		if tt.got.Cell != tt.cell || tt.got.Label != tt.label {
			t.Errorf("%s: expected %s %q, got %s %q", tt.name, tt.cell, tt.label, tt.got.Cell, tt.got.Label)
		}
	}

	if a.Notes == nil || *a.Notes != models.NewRange(2, 18, 10, 25) {
		t.Errorf("Expected notes box B18:J25, got %v", a.Notes)
	}
	if a.Agreements == nil || *a.Agreements != models.NewRange(11, 18, 19, 25) {
		t.Errorf("Expected agreements box K18:S25, got %v", a.Agreements)
	}
}

func TestDetectHeaderAnchorsResolvesMergeAndSkipsMissing(t *testing.T) {
	s := models.NewSheet("Lista")
	s.SetValue(4, 3, "Fecha: ________")
	s.Merge(models.NewRange(2, 3, 6, 3))
	// Labels inside the slot region are data, not header.
	s.SetValue(3, 5, "Lugar")
	s.Merge(models.NewRange(3, 5, 5, 5))

	layout, err := DetectLayout(s, models.DefaultNameSpan)
	if err != nil {
		t.Fatalf("DetectLayout failed: %v", err)
	}
	a := DetectHeaderAnchors(s, layout)

	if a.Date.Cell != "B3" || a.Date.Label != "Fecha: " {
		t.Errorf("Expected date anchored at merge top-left B3, got %+v", a.Date)
	}
	if a.Place.Cell != "" || a.Notes != nil || a.Signatory.Cell != "" {
		t.Errorf("Expected missing anchors to stay empty, got %+v", a)
	}
}

func TestLabelText(t *testing.T) {
	tests := map[string]string{
		"Fecha":               "Fecha: ",
		"Fecha:":              "Fecha: ",
		"Lugar:  ____":        "Lugar: ",
		" Hora Inicio : 08h ": "Hora Inicio: ",
	}
	for in, want := range tests {
		if got := labelText(in); got != want {
			t.Errorf("labelText(%q) = %q, expected %q", in, got, want)
		}
	}
}
