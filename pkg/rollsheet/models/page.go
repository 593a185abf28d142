package models

// Margins are page margins in inches.
type Margins struct {
	Left, Right, Top, Bottom, Header, Footer float64
}

// PageSetup holds print settings carried across duplicated pages.
type PageSetup struct {
	// Orientation is "portrait", "landscape" or empty for the default.
	Orientation string `json:"orientation,omitempty"`
	// PaperSize follows the OOXML paper size index; 0 means default.
	PaperSize   int      `json:"paper_size,omitempty"`
	FitToWidth  int      `json:"fit_to_width,omitempty"`
	FitToHeight int      `json:"fit_to_height,omitempty"`
	Margins     *Margins `json:"margins,omitempty"`
}
