package export

import (
	"strings"
	"time"

	"github.com/eggfriedrice24/tcad"
)

// DefaultPixelsPerMM is the resolution of PNG previews unless
// [WithPixelsPerMM] says otherwise.
const DefaultPixelsPerMM = 4.0

// Paper is a physical page size in millimetres.
type Paper struct {
	Name          string
	Width, Height float64
}

var (
	A4     = Paper{Name: "A4", Width: 210, Height: 297}
	Letter = Paper{Name: "Letter", Width: 216, Height: 279}
)

// PaperSize resolves a paper token case-insensitively. Unknown tokens fall
// back to [A4].
func PaperSize(token string) Paper {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "a4":
		return A4
	case "letter":
		return Letter
	default:
		tcad.Logger().Debug("export: unknown paper size, using A4", "paper", token)
		return A4
	}
}

// Options configures the emitters. Each emitter ignores the options that
// don't apply to it.
type Options struct {
	// Paper is the PDF page size.
	Paper Paper
	// ArrowMarker makes the SVG emitter define the marker that grain lines
	// reference.
	ArrowMarker bool
	// SanitizeLayers makes the DXF emitter replace characters outside
	// [A-Za-z0-9_-] in layer names with underscores.
	SanitizeLayers bool
	// PixelsPerMM is the PNG resolution.
	PixelsPerMM float64
	// CreationDate is recorded in PDF metadata. The zero value means now.
	CreationDate time.Time
}

// Option changes one setting of [Options].
type Option func(*Options)

// WithPaper selects the PDF paper size by token, as resolved by [PaperSize].
func WithPaper(token string) Option {
	return func(o *Options) { o.Paper = PaperSize(token) }
}

// WithArrowMarker sets whether SVG output defines the grain line arrow marker.
func WithArrowMarker(on bool) Option {
	return func(o *Options) { o.ArrowMarker = on }
}

// WithSanitizedLayers sets whether DXF layer names are sanitized.
func WithSanitizedLayers(on bool) Option {
	return func(o *Options) { o.SanitizeLayers = on }
}

// WithPixelsPerMM sets the PNG resolution. Values that aren't positive are
// ignored.
func WithPixelsPerMM(ppm float64) Option {
	return func(o *Options) {
		if ppm > 0 {
			o.PixelsPerMM = ppm
		}
	}
}

// WithCreationDate fixes the creation date recorded in PDF metadata, which
// makes output reproducible.
func WithCreationDate(t time.Time) Option {
	return func(o *Options) { o.CreationDate = t }
}

// NewOptions applies opts to the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Paper:       A4,
		PixelsPerMM: DefaultPixelsPerMM,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
