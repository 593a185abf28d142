package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// DrawingInventory counts the drawing objects anchored on a sheet.
// Pictures are carried onto every page; shapes and charts are not.
type DrawingInventory struct {
	Pictures int `json:"pictures"`
	Shapes   int `json:"shapes"`
	Charts   int `json:"charts"`
	// ShapeTexts holds the visible text of text boxes and other shapes.
	ShapeTexts []string `json:"shape_texts,omitempty"`
}

// Uncarried reports how many drawing objects will not survive page duplication.
func (d DrawingInventory) Uncarried() int {
	return d.Shapes + d.Charts
}

// ScanDrawings walks the OOXML package and counts drawing objects per sheet name.
func ScanDrawings(r io.ReaderAt, size int64) (map[string]DrawingInventory, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	drawingPaths := getSheetDrawingMap(zr)
	result := make(map[string]DrawingInventory, len(drawingPaths))
	for sheetName, drawingPath := range drawingPaths {
		data, err := readZipFile(zr, drawingPath)
		if err != nil || data == nil {
			continue
		}
		result[sheetName] = parseDrawingXML(data)
	}
	return result, nil
}

// getSheetDrawingMap returns a mapping of sheet names to their drawing XML paths.
func getSheetDrawingMap(r *zip.Reader) map[string]string {
	result := make(map[string]string)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)
	if len(sheetsInfo) == 0 {
		return result
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}

	for sheetName, sheetPath := range parseWorkbookRels(wbRelsXML, sheetsInfo) {
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
		relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil || sheetRelsXML == nil {
			continue
		}
		if drawingPath := findDrawingRelationship(sheetRelsXML); drawingPath != "" {
			result[sheetName] = resolveRelativePath(drawingPath, "xl/drawings")
		}
	}

	return result
}

// parseDrawingXML counts the top-level objects of each anchor. Group shapes
// count once as a shape.
func parseDrawingXML(data []byte) DrawingInventory {
	var inv DrawingInventory
	decoder := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	inAnchor := false
	anchorDepth := 0

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				inAnchor, anchorDepth = true, depth
				continue
			}
			if !inAnchor || depth != anchorDepth+1 {
				continue
			}
			switch t.Name.Local {
			case "pic":
				inv.Pictures++
			case "sp", "cxnSp", "grpSp":
				inv.Shapes++
				if text := collectText(decoder); text != "" {
					inv.ShapeTexts = append(inv.ShapeTexts, text)
				}
				depth--
			case "graphicFrame":
				inv.Charts++
			}
		case xml.EndElement:
			if inAnchor && depth == anchorDepth {
				inAnchor = false
			}
			depth--
		}
	}

	return inv
}

// collectText consumes the current element and returns its a:t text runs.
func collectText(decoder *xml.Decoder) string {
	var sb strings.Builder
	depth := 1
	inText := false
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			inText = t.Name.Local == "t"
		case xml.EndElement:
			depth--
			inText = false
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "sheet" {
			continue
		}
		var name, rID string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "name":
				name = attr.Value
			case "id":
				rID = attr.Value
			}
		}
		if name != "" && rID != "" {
			result[rID] = name
		}
	}

	return result
}

// parseWorkbookRels maps sheet names to their worksheet part paths.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var rID, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Id":
				rID = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
			result[sheetName] = resolveRelativePath(target, "xl")
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok || se.Name.Local != "Relationship" {
			continue
		}
		var relType, target string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "Type":
				relType = attr.Value
			case "Target":
				target = attr.Value
			}
		}
		// vmlDrawing parts hold legacy comments, not pictures or shapes.
		if strings.HasSuffix(strings.ToLower(relType), "/drawing") {
			return target
		}
	}

	return ""
}
