// Package pdf implements the layout.PageWriter capability on top of
// github.com/go-pdf/fpdf.
package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/kozaktomas/card-press/internal/layout"
)

// Factory creates fpdf-backed documents for both layout modes.
type Factory struct {
	cardWidthIn  float64
	cardHeightIn float64
}

// NewFactory creates a document factory. Card documents use pages of
// exactly the given card size in inches; sheet documents are A3 landscape
// in mm.
func NewFactory(cardWidthIn, cardHeightIn float64) *Factory {
	return &Factory{
		cardWidthIn:  cardWidthIn,
		cardHeightIn: cardHeightIn,
	}
}

// NewCardDocument creates a portrait document whose page size equals one
// card, for full-bleed single-card pages.
func (f *Factory) NewCardDocument() layout.PageWriter {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: f.cardWidthIn, Ht: f.cardHeightIn},
	})
	return newDocument(doc)
}

// NewSheetDocument creates an A3 landscape document in mm for the grid
// sheet layout.
func (f *Factory) NewSheetDocument() layout.PageWriter {
	doc := fpdf.New("L", "mm", "A3", "")
	doc.SetDashPattern([]float64{1, 2}, 0)
	return newDocument(doc)
}

// Document wraps an fpdf document as a layout.PageWriter.
type Document struct {
	pdf *fpdf.Fpdf
}

func newDocument(pdf *fpdf.Fpdf) *Document {
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &Document{pdf: pdf}
}

func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// PlaceImage draws an image at an explicit position and size. The image
// type is derived from the file extension.
func (d *Document) PlaceImage(path string, x, y, w, h float64) {
	d.pdf.ImageOptions(path, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
}

func (d *Document) DrawDashedLine(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

// Save writes the document and closes it. fpdf accumulates errors
// internally, so this is also where placement failures surface.
func (d *Document) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("could not write PDF: %w", err)
	}
	return nil
}
