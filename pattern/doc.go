// Package pattern defines pattern pieces and the curve segments their outlines
// are made of, along with their JSON representation.
//
// A segment is one of four kinds: line, quadratic Bézier, cubic Bézier or
// circular arc. Code that switches over [SegmentKind] handles all four kinds;
// input is checked with [CheckSegments] or [CheckPieces] first so that an
// unknown kind surfaces as an error rather than being skipped.
package pattern
