package writer

import (
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// StyleToExcelize converts a model style into an excelize style definition.
func StyleToExcelize(st models.Style) *excelize.Style {
	xs := &excelize.Style{NumFmt: st.NumFmt}

	if st.Font != (models.Font{}) {
		xs.Font = &excelize.Font{
			Bold:      st.Font.Bold,
			Italic:    st.Font.Italic,
			Underline: st.Font.Underline,
			Family:    st.Font.Family,
			Size:      st.Font.Size,
			Color:     st.Font.Color,
		}
	}
	if st.Fill.Pattern > 0 {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: st.Fill.Pattern}
		if st.Fill.Color != "" {
			xs.Fill.Color = []string{st.Fill.Color}
		}
	}
	sides := []struct {
		kind string
		side models.BorderSide
	}{
		{"left", st.Border.Left},
		{"right", st.Border.Right},
		{"top", st.Border.Top},
		{"bottom", st.Border.Bottom},
	}
	for _, s := range sides {
		if s.side.Style == 0 {
			continue
		}
		xs.Border = append(xs.Border, excelize.Border{Type: s.kind, Color: s.side.Color, Style: s.side.Style})
	}
	if st.Alignment != (models.Alignment{}) {
		xs.Alignment = &excelize.Alignment{
			Horizontal:   st.Alignment.Horizontal,
			Vertical:     st.Alignment.Vertical,
			WrapText:     st.Alignment.WrapText,
			ShrinkToFit:  st.Alignment.ShrinkToFit,
			Indent:       st.Alignment.Indent,
			TextRotation: st.Alignment.TextRotation,
		}
	}
	if st.CustomNumFmt != "" {
		custom := st.CustomNumFmt
		xs.CustomNumFmt = &custom
	}
	return xs
}
