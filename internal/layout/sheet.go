package layout

// Sheet dimensions in mm (A3 landscape).
const (
	SheetW = 420.0
	SheetH = 297.0
)

// SheetConfig holds the 6x3 grid geometry for the multi-card sheet layout.
// All values are in mm.
type SheetConfig struct {
	LeftMarginMM float64 // left edge of the card grid (20mm)
	TopMarginMM  float64 // top edge of the card grid (15mm)
	CardWidthMM  float64 // 63mm
	CardHeightMM float64 // 88mm
	GapMM        float64 // 0.5mm between adjacent cards
	LineWidthMM  float64 // 0.14mm cut-guide stroke width
	PairOffsetMM float64 // 0.1mm nudge separating paired guide lines
	Columns      int     // 6
	Rows         int     // 3
	GuideExtentX float64 // horizontal guides span 0..GuideExtentX (440mm)
	GuideExtentY float64 // vertical guides span 0..GuideExtentY (297mm)
}

// DefaultSheetConfig returns the print-ready sheet configuration.
func DefaultSheetConfig() SheetConfig {
	return SheetConfig{
		LeftMarginMM: 20.0,
		TopMarginMM:  15.0,
		CardWidthMM:  63.0,
		CardHeightMM: 88.0,
		GapMM:        0.5,
		LineWidthMM:  0.14,
		PairOffsetMM: 0.1,
		Columns:      6,
		Rows:         3,
		GuideExtentX: 440.0,
		GuideExtentY: 297.0,
	}
}

// CardsPerSheet returns the number of card positions on one sheet page.
func (c SheetConfig) CardsPerSheet() int {
	return c.Columns * c.Rows
}

// GridPosition maps the i-th placed card (0-based) to its page, column and
// row. Cards fill a page left to right, top to bottom.
func (c SheetConfig) GridPosition(i int) (page, col, row int) {
	perSheet := c.CardsPerSheet()
	return i / perSheet, i % c.Columns, (i / c.Columns) % c.Rows
}

// CellX returns the X coordinate of a card in the given 0-indexed column.
func (c SheetConfig) CellX(col int) float64 {
	return c.LeftMarginMM + float64(col)*c.CardWidthMM + float64(col)*c.GapMM
}

// CellY returns the Y coordinate of a card in the given 0-indexed row.
func (c SheetConfig) CellY(row int) float64 {
	return c.TopMarginMM + float64(row)*c.CardHeightMM + float64(row)*c.GapMM
}

// Line is a dashed cut-guide segment in sheet coordinates.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// CutGuides returns the dashed lines drawn on every fresh sheet page: one
// guide outside each border of the card grid, plus a closely spaced pair of
// guides in every internal column and row gap so each cut can follow a line
// on both sides of the blade.
func (c SheetConfig) CutGuides() []Line {
	var lines []Line

	gridRight := c.LeftMarginMM + c.CardWidthMM*float64(c.Columns) + c.GapMM*float64(c.Columns-1)
	gridBottom := c.TopMarginMM + c.CardHeightMM*float64(c.Rows) + c.GapMM*float64(c.Rows-1)

	// Border guides.
	left := c.LeftMarginMM - c.LineWidthMM
	right := gridRight + c.PairOffsetMM
	top := c.TopMarginMM - c.LineWidthMM
	bottom := gridBottom + c.PairOffsetMM
	lines = append(lines,
		Line{left, 0, left, c.GuideExtentY},
		Line{right, 0, right, c.GuideExtentY},
		Line{0, top, c.GuideExtentX, top},
		Line{0, bottom, c.GuideExtentX, bottom},
	)

	// Paired guides in each internal column gap.
	for i := 1; i < c.Columns; i++ {
		gapLeft := c.LeftMarginMM + c.CardWidthMM*float64(i) + c.GapMM*float64(i-1)
		x1 := gapLeft + c.PairOffsetMM
		x2 := gapLeft + c.GapMM - c.LineWidthMM
		lines = append(lines,
			Line{x1, 0, x1, c.GuideExtentY},
			Line{x2, 0, x2, c.GuideExtentY},
		)
	}

	// Paired guides in each internal row gap.
	for i := 1; i < c.Rows; i++ {
		gapTop := c.TopMarginMM + c.CardHeightMM*float64(i) + c.GapMM*float64(i-1)
		y1 := gapTop + c.PairOffsetMM
		y2 := gapTop + c.GapMM - c.LineWidthMM
		lines = append(lines,
			Line{0, y1, c.GuideExtentX, y1},
			Line{0, y2, c.GuideExtentX, y2},
		)
	}

	return lines
}
