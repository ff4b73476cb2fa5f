package layout

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kozaktomas/card-press/internal/progress"
)

// ErrNoSlots is wrapped by the LayoutError returned for an empty slot list.
var ErrNoSlots = errors.New("no slots to lay out")

// LayoutError indicates structurally invalid input to the layout engine.
// It is fatal: an empty or broken slot mapping is a caller error, not a
// partial-failure case.
type LayoutError struct {
	Err error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout failed: %v", e.Err)
}

func (e *LayoutError) Unwrap() error { return e.Err }

// Slot is one card position ready for layout, with conditioned artifact
// paths for both faces. Slots are laid out in slice order; the engine
// assigns page positions by position in the slice, so excluded slots leave
// no gaps.
type Slot struct {
	Index     int
	FrontPath string
	BackPath  string
}

// SequentialConfig configures sequential mode: full-bleed single-card
// pages, batched into numbered documents.
type SequentialConfig struct {
	CardWidthIn      float64
	CardHeightIn     float64
	CardsPerDocument int
}

// ExportSequential lays out one back page and one front page per slot,
// saving a numbered document every CardsPerDocument slots and a final
// partial document after the last slot. It returns the saved paths.
func ExportSequential(slots []Slot, docs DocumentFactory, cfg SequentialConfig, dir string, reporter progress.Reporter) ([]string, error) {
	if len(slots) == 0 {
		return nil, &LayoutError{Err: ErrNoSlots}
	}
	if cfg.CardsPerDocument < 1 {
		cfg.CardsPerDocument = 1
	}

	reporter.SetState(progress.StateLayingOut)

	var saved []string
	fileNum := 1
	doc := docs.NewCardDocument()

	for i, slot := range slots {
		if i > 0 && i%cfg.CardsPerDocument == 0 {
			reporter.SetState(progress.StateSavingDocument)
			path := filepath.Join(dir, fmt.Sprintf("%d.pdf", fileNum))
			if err := doc.Save(path); err != nil {
				return saved, fmt.Errorf("could not save document %d: %w", fileNum, err)
			}
			saved = append(saved, path)
			fileNum++
			reporter.SetState(progress.StateLayingOut)
			doc = docs.NewCardDocument()
		}

		doc.AddPage()
		doc.PlaceImage(slot.BackPath, 0, 0, cfg.CardWidthIn, cfg.CardHeightIn)
		doc.AddPage()
		doc.PlaceImage(slot.FrontPath, 0, 0, cfg.CardWidthIn, cfg.CardHeightIn)
	}

	reporter.SetState(progress.StateSavingDocument)
	path := filepath.Join(dir, fmt.Sprintf("%d.pdf", fileNum))
	if err := doc.Save(path); err != nil {
		return saved, fmt.Errorf("could not save document %d: %w", fileNum, err)
	}
	saved = append(saved, path)

	return saved, nil
}

// ExportGridSheet lays out the front image of every slot on 6x3 grid
// sheets, starting a fresh page with cut guides every CardsPerSheet
// placements. All pages go into a single document saved once at the end.
// Backs are intentionally not placed in this mode.
func ExportGridSheet(slots []Slot, docs DocumentFactory, cfg SheetConfig, dir string, reporter progress.Reporter) ([]string, error) {
	if len(slots) == 0 {
		return nil, &LayoutError{Err: ErrNoSlots}
	}

	reporter.SetState(progress.StateLayingOut)

	doc := docs.NewSheetDocument()
	guides := cfg.CutGuides()

	for i, slot := range slots {
		if i%cfg.CardsPerSheet() == 0 {
			doc.AddPage()
			for _, line := range guides {
				doc.DrawDashedLine(line.X1, line.Y1, line.X2, line.Y2)
			}
		}

		_, col, row := cfg.GridPosition(i)
		doc.PlaceImage(slot.FrontPath, cfg.CellX(col), cfg.CellY(row), cfg.CardWidthMM, cfg.CardHeightMM)
	}

	reporter.SetState(progress.StateSavingDocument)
	path := filepath.Join(dir, "sheets.pdf")
	if err := doc.Save(path); err != nil {
		return nil, fmt.Errorf("could not save sheet document: %w", err)
	}

	return []string{path}, nil
}
