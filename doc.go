// Package tcad is the geometric kernel of a 2D sewing-pattern design tool.
//
// Pattern pieces are outlines built from lines, quadratic and cubic Béziers and
// circular arcs. From them the kernel derives a triangle mesh for 3D preview
// and several export formats: SVG, DXF, a tiled multi-page PDF and a PNG
// raster preview.
//
// # Coordinate spaces
//
// Three spaces meet in this module:
//
//   - piece-local space, in which every outline point, grain line and notch is
//     stored relative to its piece's origin,
//   - world space, in which the origin of each piece places it on the canvas.
//     World space is y-down,
//   - page space of printed tiles, in millimetres from the top left corner of
//     the sheet.
//
// DXF output is y-up and negates world y coordinates.
//
// # Packages
//
// The [github.com/eggfriedrice24/tcad/geom] package provides vectors, points,
// bounding boxes, affine transforms and Bézier/arc evaluation. The data model
// lives in [github.com/eggfriedrice24/tcad/pattern]. Sampling of curved
// segments is done by [github.com/eggfriedrice24/tcad/flatten], triangulation
// by [github.com/eggfriedrice24/tcad/tessellate] and mesh assembly by
// [github.com/eggfriedrice24/tcad/mesh]. Combined extents and page tiling are
// computed by [github.com/eggfriedrice24/tcad/layout], and all file formats are
// produced by [github.com/eggfriedrice24/tcad/export].
//
// [github.com/eggfriedrice24/tcad/store] holds pieces between requests and
// implements undo/redo, project files and crash recovery.
//
// # Sampling
//
// Curve sampling is fixed-step, not error-bounded. Quadratic Béziers are
// sampled at 16 steps, cubic Béziers at 24 steps and arcs at roughly 0.1
// radians per step, with a floor of 4 steps. Triangulation samples arcs at 32
// steps. The same input always produces the same output.
//
// # Logging
//
// The module is silent by default. Use [SetLogger] to route its diagnostics
// to a [log/slog.Logger].
package tcad
