package models

// Document is the composed workbook: sheets in page order.
type Document struct {
	Sheets []*Sheet `json:"sheets"`
}

// Append adds a sheet at the end of the page order.
func (d *Document) Append(s *Sheet) {
	d.Sheets = append(d.Sheets, s)
}

// SheetNames returns the sheet names in page order.
func (d *Document) SheetNames() []string {
	names := make([]string, len(d.Sheets))
	for i, s := range d.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the sheet with the given name, or nil.
func (d *Document) Sheet(name string) *Sheet {
	for _, s := range d.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}
