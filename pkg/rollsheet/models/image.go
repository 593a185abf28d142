package models

// Image is a picture anchored at a cell.
type Image struct {
	// Cell is the top-left anchor in A1 notation.
	Cell string `json:"cell"`
	// Extension includes the dot, e.g. ".png".
	Extension string `json:"extension"`
	// Data is the raw encoded image.
	Data    []byte  `json:"-"`
	AltText string  `json:"alt_text,omitempty"`
	ScaleX  float64 `json:"scale_x,omitempty"`
	ScaleY  float64 `json:"scale_y,omitempty"`
	OffsetX int     `json:"offset_x,omitempty"`
	OffsetY int     `json:"offset_y,omitempty"`
	// Positioning is "oneCell", "absolute" or empty for twoCell.
	Positioning     string `json:"positioning,omitempty"`
	LockAspectRatio bool   `json:"lock_aspect_ratio,omitempty"`
}

// Logo is an optional picture file stamped on every page.
type Logo struct {
	// Path is the image file; a missing file is skipped.
	Path string `json:"path" yaml:"path" validate:"required"`
	// Cell is the anchor in A1 notation.
	Cell string `json:"cell" yaml:"cell" validate:"required"`
	// Scale resizes the picture before embedding; 0 keeps the original size.
	Scale float64 `json:"scale,omitempty" yaml:"scale" validate:"gte=0"`
}
