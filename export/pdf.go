package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/layout"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	// PDFPageMargin is the margin, in millimetres, around the printable area
	// of every page.
	PDFPageMargin = 10.0
	// CrosshairArm is the length of each arm of a registration crosshair.
	CrosshairArm = 5.0

	pdfTitle = "TCAD Export"
)

// WritePDF writes pieces as a PDF document tiled across pages. See
// [SavePDF].
func WritePDF(w io.Writer, pieces []pattern.Piece, opts ...Option) error {
	doc, err := buildPDF(pieces, NewOptions(opts...))
	if err != nil {
		return err
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}

// SavePDF writes pieces as a PDF file at path.
//
// Outlines are flattened to polylines in world coordinates. Their combined
// bounding box, grown by [layout.PDFMargin], is divided into tiles the size of
// the printable area of a page, which is the paper minus [PDFPageMargin] on
// every side. There is one page per tile in row-major order. Each page carries
// a registration crosshair in every corner of its printable area, a label
// such as "B3" naming its row and column, and all outlines translated into
// the tile. Outlines are not clipped to the tile.
//
// An empty set of pieces produces a single blank page.
func SavePDF(path string, pieces []pattern.Piece, opts ...Option) error {
	doc, err := buildPDF(pieces, NewOptions(opts...))
	if err != nil {
		return err
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}

func buildPDF(pieces []pattern.Piece, o Options) (*fpdf.Fpdf, error) {
	paper := o.Paper
	if paper.Width <= 0 || paper.Height <= 0 {
		paper = A4
	}
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: paper.Width, Ht: paper.Height},
	})
	doc.SetTitle(pdfTitle, true)
	doc.SetCreator("tcad", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	if !o.CreationDate.IsZero() {
		doc.SetCreationDate(o.CreationDate)
	}
	doc.AddPage()
	if len(pieces) == 0 {
		return doc, pdfError(doc)
	}

	var polylines [][]geom.Point
	for i := range pieces {
		p := &pieces[i]
		if p.IsEmpty() {
			continue
		}
		pts, err := flatten.Polyline(p.Origin, p.Outline)
		if err != nil {
			return nil, err
		}
		polylines = append(polylines, pts)
	}

	box, err := layout.Bounds(pieces)
	if err != nil {
		return nil, err
	}
	box = box.Inflate(layout.PDFMargin)

	const m = PDFPageMargin
	printW := paper.Width - 2*m
	printH := paper.Height - 2*m
	grid := layout.NewGrid(box, printW, printH)
	tcad.Logger().Debug("export: tiling pdf",
		"paper", paper.Name,
		"cols", grid.Cols,
		"rows", grid.Rows)

	doc.SetFont("Helvetica", "", 8)
	for i, tile := range grid.Tiles(box) {
		if i > 0 {
			doc.AddPage()
		}

		doc.SetLineWidth(0.3)
		doc.SetDrawColor(128, 128, 128)
		for _, c := range []geom.Point{
			geom.Pt(m, m),
			geom.Pt(m, paper.Height-m),
			geom.Pt(paper.Width-m, m),
			geom.Pt(paper.Width-m, paper.Height-m),
		} {
			doc.Line(c.X-CrosshairArm, c.Y, c.X+CrosshairArm, c.Y)
			doc.Line(c.X, c.Y-CrosshairArm, c.X, c.Y+CrosshairArm)
		}

		doc.SetTextColor(0, 0, 0)
		doc.Text(m+1, m+6, tile.Label)

		// The tile origin maps to the top-left corner of the printable area.
		toPage := func(pt geom.Point) geom.Point {
			return geom.Pt(m+(pt.X-tile.Origin.X), m+(pt.Y-tile.Origin.Y))
		}
		doc.SetLineWidth(0.5)
		doc.SetDrawColor(0, 0, 0)
		for _, pts := range polylines {
			if len(pts) < 2 {
				continue
			}
			for j, pt := range pts {
				pp := toPage(pt)
				if j == 0 {
					doc.MoveTo(pp.X, pp.Y)
				} else {
					doc.LineTo(pp.X, pp.Y)
				}
			}
			doc.DrawPath("D")
		}
	}
	return doc, pdfError(doc)
}

func pdfError(doc *fpdf.Fpdf) error {
	if err := doc.Error(); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}
