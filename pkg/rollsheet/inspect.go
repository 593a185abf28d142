package rollsheet

import (
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/parser"
)

// Inspection describes what a template offers to the compositor.
type Inspection struct {
	Sheet      string                  `json:"sheet"`
	Layout     models.TemplateLayout   `json:"layout"`
	Anchors    models.HeaderAnchors    `json:"anchors"`
	Drawings   parser.DrawingInventory `json:"drawings"`
	Merges     int                     `json:"merges"`
	Images     int                     `json:"images"`
	PrintAreas []string                `json:"print_areas,omitempty"`
	FreezeAt   string                  `json:"freeze_at,omitempty"`
}

// Inspect loads a template and reports its detected slot layout, header
// anchors and drawing inventory.
func Inspect(template []byte, sheetName string, span models.NameSpan) (*Inspection, error) {
	plan, err := Prepare(Options{
		Mode:          ModeTemplate,
		Template:      template,
		TemplateSheet: sheetName,
		NameSpan:      span,
	})
	if err != nil {
		return nil, err
	}

	out := &Inspection{
		Sheet:    plan.Base.Name,
		Layout:   plan.Layout,
		Anchors:  plan.Anchors,
		Drawings: plan.Drawings,
		Merges:   len(plan.Base.Merges),
		Images:   len(plan.Base.Images),
		FreezeAt: plan.Base.FreezeAt,
	}
	for _, area := range plan.Base.PrintAreas {
		out.PrintAreas = append(out.PrintAreas, area.String())
	}
	return out, nil
}
