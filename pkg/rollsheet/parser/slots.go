package parser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// ErrNoSlots indicates the template has no single-row merge over the name columns.
var ErrNoSlots = errors.New("no record slots detected")

// DetectLayout finds the record slots of a template sheet. A slot is a merge
// spanning exactly the name columns and exactly one row; the first slot row is
// the anchor and the number of slots is the page capacity.
//
// The sheet is only read.
func DetectLayout(sheet *models.Sheet, span models.NameSpan) (models.TemplateLayout, error) {
	if span.StartCol < 2 || span.EndCol < span.StartCol {
		return models.TemplateLayout{}, fmt.Errorf("invalid name span %d:%d", span.StartCol, span.EndCol)
	}

	seen := make(map[int]bool)
	var rows []int
	for _, m := range sheet.Merges {
		if m.StartCol != span.StartCol || m.EndCol != span.EndCol || !m.SingleRow() {
			continue
		}
		if seen[m.StartRow] {
			continue
		}
		seen[m.StartRow] = true
		rows = append(rows, m.StartRow)
	}
	if len(rows) == 0 {
		return models.TemplateLayout{}, fmt.Errorf("%w in sheet %q (name columns %d-%d)",
			ErrNoSlots, sheet.Name, span.StartCol, span.EndCol)
	}
	sort.Ints(rows)

	return models.TemplateLayout{
		AnchorRow: rows[0],
		SlotCount: len(rows),
		SlotRows:  rows,
		Columns:   models.ColumnsFor(span),
	}, nil
}
