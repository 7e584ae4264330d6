package tcad

import "errors"

var (
	// ErrEmptyOutline is returned when an outline without segments is passed
	// to an operation that needs geometry, such as tessellation.
	ErrEmptyOutline = errors.New("tcad: empty outline")

	// ErrInvalidSegment is returned for curve segments whose kind is not one
	// of line, quadratic Bézier, cubic Bézier or arc.
	ErrInvalidSegment = errors.New("tcad: invalid curve segment")

	// ErrExport wraps I/O and serialization failures of exporters.
	ErrExport = errors.New("tcad: export failed")

	// ErrNotFound is returned when a piece identifier is unknown.
	ErrNotFound = errors.New("tcad: piece not found")

	// ErrUnsupportedVersion is returned when loading a project file of an
	// unknown format version.
	ErrUnsupportedVersion = errors.New("tcad: unsupported project version")

	ErrNothingToUndo = errors.New("tcad: nothing to undo")
	ErrNothingToRedo = errors.New("tcad: nothing to redo")
)
