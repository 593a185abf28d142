// Package rollsheet composes paginated attendance sheets from a record set,
// either on a built-in layout or by filling the record slots of a template.
package rollsheet

import (
	"github.com/rs/zerolog"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/compose"
	"github.com/ukaji3/rollsheet-go/pkg/rollsheet/models"
)

// Mode represents how the page layout is obtained.
type Mode string

const (
	// ModeScratch builds every page on the built-in layout.
	ModeScratch Mode = "scratch"
	// ModeTemplate fills the record slots detected on a template sheet.
	ModeTemplate Mode = "template"
)

// DefaultLocale selects Spanish month names.
const DefaultLocale = "es"

// Options configures generation behavior.
type Options struct {
	// Mode specifies the layout mode. If empty, ModeTemplate is used when
	// Template is set and ModeScratch otherwise.
	Mode Mode
	// Template is the xlsx template document.
	Template []byte
	// TemplateSheet names the template sheet; empty means the first sheet.
	TemplateSheet string
	// SheetName is the base page name in scratch mode.
	SheetName string
	// SlotCount is the page capacity in scratch mode.
	SlotCount int
	// NameSpan is the merged name column range that marks a slot.
	NameSpan models.NameSpan
	// Locale selects the month names of the date header.
	Locale string
	// MarkSymbol is the category mark. If nil, defaults to "X".
	MarkSymbol *string
	// MethodMarker is the constant written into the signature column.
	// If nil, defaults to "Virtual"; an empty string writes nothing.
	MethodMarker *string
	// Logos are stamped on every page; missing files are skipped.
	Logos []models.Logo
	// Workers bounds concurrent page construction; 0 means GOMAXPROCS.
	Workers int
	// Logger receives progress and diagnostics. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// DefaultLogos are the optional header logos of the built-in layout.
func DefaultLogos() []models.Logo {
	return []models.Logo{
		{Path: "logo_izq.png", Cell: "B2", Scale: 0.6},
		{Path: "logo_der.png", Cell: "Q2", Scale: 0.6},
	}
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		SheetName: compose.DefaultSheetName,
		SlotCount: models.DefaultSlotCount,
		NameSpan:  models.DefaultNameSpan,
		Locale:    DefaultLocale,
		Logos:     DefaultLogos(),
	}
}

// ResolvedMode returns the effective layout mode.
func (o Options) ResolvedMode() Mode {
	if o.Mode != "" {
		return o.Mode
	}
	if len(o.Template) > 0 {
		return ModeTemplate
	}
	return ModeScratch
}

// ResolvedMarkSymbol returns the category mark to write.
func (o Options) ResolvedMarkSymbol() string {
	if o.MarkSymbol != nil {
		return *o.MarkSymbol
	}
	return compose.DefaultMarkSymbol
}

// ResolvedMethodMarker returns the signature column constant.
func (o Options) ResolvedMethodMarker() string {
	if o.MethodMarker != nil {
		return *o.MethodMarker
	}
	return compose.DefaultMethodMarker
}

func (o Options) nameSpan() models.NameSpan {
	if o.NameSpan == (models.NameSpan{}) {
		return models.DefaultNameSpan
	}
	return o.NameSpan
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return compose.DefaultSheetName
	}
	return compose.SanitizeSheetName(o.SheetName)
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultLocale
	}
	return o.Locale
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
