// Package layout turns the ordered, conditioned slot mapping into paginated
// print documents: either sequential single-card pages batched into
// fixed-size files, or 6x3 grid sheets with dashed cut guides.
package layout

// PageWriter is the page-writing capability the engine renders into. All
// coordinates use the unit the document was created with.
type PageWriter interface {
	AddPage()
	PlaceImage(path string, x, y, w, h float64)
	DrawDashedLine(x1, y1, x2, y2 float64)
	Save(path string) error
}

// DocumentFactory creates documents for the two layout modes: card
// documents sized to a single card (inches) and sheet documents sized to a
// full grid sheet (mm).
type DocumentFactory interface {
	NewCardDocument() PageWriter
	NewSheetDocument() PageWriter
}
