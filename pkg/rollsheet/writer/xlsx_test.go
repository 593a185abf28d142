package writer

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/parser"
	"github.com/xuri/excelize/v2"
)

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(6, 6, color.NRGBA{B: 255, A: 255}), imaging.PNG))
	return buf.Bytes()
}

func sampleDocument(t *testing.T) *models.Document {
	bordered := models.Style{Font: models.Font{Bold: true}, Border: models.ThinBox}

	first := models.NewSheet("Minuta")
	first.SetValue(3, 11, "Ana")
	first.SetStyle(3, 11, bordered)
	first.SetValue(2, 11, 1)
	first.SetStyle(2, 11, bordered)
	first.SetFormula(20, 1, "COUNTA(C11:C26)")
	first.Merge(models.NewRange(3, 11, 5, 11))
	first.SetColWidth(3, 22)
	first.SetRowHeight(7, 28)
	first.AddImage(models.Image{Cell: "B2", Extension: ".png", Data: pngData(t), LockAspectRatio: true})
	first.Page = models.PageSetup{
		Orientation: "landscape",
		FitToWidth:  1,
		Margins:     &models.Margins{Left: 0.4, Right: 0.4, Top: 0.5, Bottom: 0.5, Header: 0.3, Footer: 0.3},
	}
	first.PrintAreas = []models.Range{models.NewRange(1, 1, 19, 30)}
	first.FreezeAt = "C11"

	second, err := first.Clone("Minuta 2")
	require.NoError(t, err)
	second.SetValue(3, 11, "Luis")

	doc := &models.Document{}
	doc.Append(first)
	doc.Append(second)
	return doc
}

func TestBytesRoundTrip(t *testing.T) {
	data, err := Bytes(sampleDocument(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Minuta", "Minuta 2"}, f.GetSheetList())

	v, err := f.GetCellValue("Minuta", "C11")
	require.NoError(t, err)
	assert.Equal(t, "Ana", v)
	v, err = f.GetCellValue("Minuta 2", "C11")
	require.NoError(t, err)
	assert.Equal(t, "Luis", v)

	formula, err := f.GetCellFormula("Minuta 2", "T1")
	require.NoError(t, err)
	assert.Equal(t, "COUNTA(C11:C26)", formula)

	merges, err := f.GetMergeCells("Minuta 2")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "C11", merges[0].GetStartAxis())
	assert.Equal(t, "E11", merges[0].GetEndAxis())

	for _, sheet := range []string{"Minuta", "Minuta 2"} {
		pics, err := f.GetPictures(sheet, "B2")
		require.NoError(t, err)
		assert.Len(t, pics, 1, sheet)

		w, err := f.GetColWidth(sheet, "C")
		require.NoError(t, err)
		assert.Equal(t, 22.0, w)

		layout, err := f.GetPageLayout(sheet)
		require.NoError(t, err)
		require.NotNil(t, layout.Orientation)
		assert.Equal(t, "landscape", *layout.Orientation)

		panes, err := f.GetPanes(sheet)
		require.NoError(t, err)
		assert.True(t, panes.Freeze)
		assert.Equal(t, 2, panes.XSplit)
		assert.Equal(t, 10, panes.YSplit)
	}

	// Both bordered cells share one registered style.
	idName, err := f.GetCellStyle("Minuta", "C11")
	require.NoError(t, err)
	idNumber, err := f.GetCellStyle("Minuta", "B11")
	require.NoError(t, err)
	assert.Equal(t, idName, idNumber)
	st, err := f.GetStyle(idName)
	require.NoError(t, err)
	assert.True(t, st.Font.Bold)
	assert.Len(t, st.Border, 4)

	areas, err := parser.ExtractPrintAreas(f)
	require.NoError(t, err)
	assert.Equal(t, []models.Range{models.NewRange(1, 1, 19, 30)}, areas["Minuta 2"])
}

func TestBytesCanBeReloadedAsTemplate(t *testing.T) {
	data, err := Bytes(sampleDocument(t))
	require.NoError(t, err)

	tpl, err := parser.LoadTemplate(data, "Minuta 2")
	require.NoError(t, err)
	assert.Equal(t, "Luis", tpl.Sheet.Text(3, 11))
	assert.True(t, tpl.Sheet.HasMerge(models.NewRange(3, 11, 5, 11)))
	assert.Equal(t, "C11", tpl.Sheet.FreezeAt)
	assert.Len(t, tpl.Sheet.Images, 1)
	assert.Equal(t, 1, tpl.Sheet.Page.FitToWidth)
}

func TestWriteRejectsEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&models.Document{}, &buf))
	assert.Error(t, Write(nil, &buf))
	assert.Zero(t, buf.Len())
}

func TestWriteFailsOnInvalidSheetName(t *testing.T) {
	doc := &models.Document{}
	doc.Append(models.NewSheet("Minuta"))
	doc.Append(models.NewSheet("bad[name]"))

	data, err := Bytes(doc)
	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestStyleToExcelize(t *testing.T) {
	xs := StyleToExcelize(models.Style{
		Fill:         models.Fill{Pattern: 1, Color: "DDE7FF"},
		Border:       models.Border{Bottom: models.BorderSide{Style: models.Thin, Color: "000000"}},
		CustomNumFmt: "0.00",
	})

	assert.Nil(t, xs.Font)
	assert.Nil(t, xs.Alignment)
	assert.Equal(t, "pattern", xs.Fill.Type)
	assert.Equal(t, []string{"DDE7FF"}, xs.Fill.Color)
	require.Len(t, xs.Border, 1)
	assert.Equal(t, "bottom", xs.Border[0].Type)
	require.NotNil(t, xs.CustomNumFmt)
	assert.Equal(t, "0.00", *xs.CustomNumFmt)

	back := parser.StyleFromExcelize(StyleToExcelize(models.Style{Font: models.Font{Bold: true}, Border: models.ThinBox}))
	assert.True(t, back.Font.Bold)
	assert.Equal(t, models.ThinBox, back.Border)
}
