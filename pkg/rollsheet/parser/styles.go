package parser

import (
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/xuri/excelize/v2"
)

// StyleFromExcelize converts an excelize style into the model style.
// Gradient fills and diagonal borders are not modelled and are dropped.
func StyleFromExcelize(xs *excelize.Style) models.Style {
	var st models.Style
	if xs == nil {
		return st
	}
	if xs.Font != nil {
		st.Font = models.Font{
			Bold:      xs.Font.Bold,
			Italic:    xs.Font.Italic,
			Underline: xs.Font.Underline,
			Family:    xs.Font.Family,
			Size:      xs.Font.Size,
			Color:     xs.Font.Color,
		}
	}
	if xs.Fill.Type == "pattern" && xs.Fill.Pattern > 0 {
		st.Fill.Pattern = xs.Fill.Pattern
		if len(xs.Fill.Color) > 0 {
			st.Fill.Color = xs.Fill.Color[0]
		}
	}
	for _, b := range xs.Border {
		side := models.BorderSide{Style: b.Style, Color: b.Color}
		switch b.Type {
		case "left":
			st.Border.Left = side
		case "right":
			st.Border.Right = side
		case "top":
			st.Border.Top = side
		case "bottom":
			st.Border.Bottom = side
		}
	}
	if xs.Alignment != nil {
		st.Alignment = models.Alignment{
			Horizontal:   xs.Alignment.Horizontal,
			Vertical:     xs.Alignment.Vertical,
			WrapText:     xs.Alignment.WrapText,
			ShrinkToFit:  xs.Alignment.ShrinkToFit,
			Indent:       xs.Alignment.Indent,
			TextRotation: xs.Alignment.TextRotation,
		}
	}
	st.NumFmt = xs.NumFmt
	if xs.CustomNumFmt != nil {
		st.CustomNumFmt = *xs.CustomNumFmt
	}
	return st
}
