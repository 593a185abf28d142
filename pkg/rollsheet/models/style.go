package models

// Font describes cell font attributes.
type Font struct {
	Bold      bool
	Italic    bool
	Underline string
	Family    string
	Size      float64
	Color     string
}

// Fill describes a cell fill. Only pattern fills are modelled.
type Fill struct {
	Pattern int
	Color   string
}

// BorderSide describes one edge of a cell border.
type BorderSide struct {
	// Style follows the excelize border style index (1 = thin).
	Style int
	Color string
}

// Border holds the four edges of a cell border.
type Border struct {
	Left, Right, Top, Bottom BorderSide
}

// Alignment describes cell text alignment.
type Alignment struct {
	Horizontal   string
	Vertical     string
	WrapText     bool
	ShrinkToFit  bool
	Indent       int
	TextRotation int
}

// Style is a comparable cell style so it can key a style cache.
type Style struct {
	Font         Font
	Fill         Fill
	Border       Border
	Alignment    Alignment
	NumFmt       int
	CustomNumFmt string
}

// IsZero reports whether s is the default style.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Thin is the border style index of a thin line.
const Thin = 1

// ThinBox is a thin black border on all four sides.
var ThinBox = Border{
	Left:   BorderSide{Style: Thin, Color: "000000"},
	Right:  BorderSide{Style: Thin, Color: "000000"},
	Top:    BorderSide{Style: Thin, Color: "000000"},
	Bottom: BorderSide{Style: Thin, Color: "000000"},
}
