package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

func TestBuildScratchSheet(t *testing.T) {
	layout := models.DefaultLayout(16)
	s := BuildScratchSheet(DefaultSheetName, layout)
	cols := layout.Columns

	assert.Equal(t, "Minuta", s.Name)
	assert.Equal(t, "Nombre", s.Text(cols.NameStart, 9))
	assert.Equal(t, "Nº", s.Text(cols.Number, 9))
	assert.Equal(t, "Género", s.Text(cols.Gender[0], 9))
	assert.Equal(t, "LGBTIQ+", s.Text(cols.Gender[2], 10))
	assert.Equal(t, "65 años o más", s.Text(cols.AgeRange[2], 10))
	assert.Equal(t, "FIRMA", s.Text(cols.Signature, 9))
	assert.Equal(t, ActionLinesText, s.Text(8, 7))
	assert.True(t, s.HasMerge(models.NewRange(8, 7, 19, 8)))
	assert.True(t, s.HasMerge(models.NewRange(cols.Sex[0], 9, cols.Sex[2], 9)))

	// Slot rows carry borders but no values and no merges yet.
	for _, row := range layout.SlotRows {
		assert.Nil(t, s.Value(cols.NameStart, row))
		assert.Equal(t, models.ThinBox, s.Cell(cols.Signature, row).Style.Border)
		_, merged := s.MergeAt(cols.NameStart, row)
		assert.False(t, merged)
	}

	assert.Equal(t, "C11", s.FreezeAt)
	assert.Equal(t, "landscape", s.Page.Orientation)
	assert.Equal(t, 1, s.Page.FitToWidth)
	assert.Equal(t, 22.0, s.ColWidths[3])
	assert.Equal(t, "DDE7FF", s.Cell(cols.ID, 9).Style.Fill.Color)

	anchors := ScratchAnchors(layout)
	assert.Equal(t, "Anotaciones Generales", s.Text(anchors.Notes.StartCol, anchors.Notes.StartRow-1))
	assert.True(t, s.HasMerge(*anchors.Notes))
	assert.True(t, s.HasMerge(*anchors.Agreements))
	assert.Equal(t, []models.Range{models.NewRange(1, 1, 19, 38)}, s.PrintAreas)
}

func TestScratchAnchorsFollowSlotCount(t *testing.T) {
	small := ScratchAnchors(models.DefaultLayout(4))
	large := ScratchAnchors(models.DefaultLayout(16))

	assert.Equal(t, "B6", small.Date.Cell)
	assert.Equal(t, 17, small.Notes.StartRow)
	assert.Equal(t, 29, large.Notes.StartRow)
	assert.Equal(t, "B26", small.Signatory.Cell)
	assert.Equal(t, "B38", large.Signatory.Cell)
}
