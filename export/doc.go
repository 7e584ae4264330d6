// Package export serializes pattern pieces into output documents.
//
// Four formats are built in: SVG and DXF text, tiled multi-page PDF and a PNG
// raster preview. Each is available as a set of plain functions ([SVG],
// [WriteDXF], [WritePDF], [WritePNG], ...) and through the format registry
// ([New], [Save]), which other packages can extend with [Register].
//
// Emitters never modify the pieces they are given and keep no state between
// calls, so they may be used concurrently.
package export
