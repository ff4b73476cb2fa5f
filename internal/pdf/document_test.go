package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFactory_CardDocumentSaves(t *testing.T) {
	factory := NewFactory(2.73, 3.71)
	doc := factory.NewCardDocument()

	doc.AddPage()
	path := filepath.Join(t.TempDir(), "1.pdf")
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved document should exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved document should not be empty")
	}
}

func TestFactory_SheetDocumentWithGuides(t *testing.T) {
	factory := NewFactory(2.73, 3.71)
	doc := factory.NewSheetDocument()

	doc.AddPage()
	doc.DrawDashedLine(19.86, 0, 19.86, 297)
	doc.DrawDashedLine(0, 14.86, 440, 14.86)

	path := filepath.Join(t.TempDir(), "sheets.pdf")
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved document should exist: %v", err)
	}
}
