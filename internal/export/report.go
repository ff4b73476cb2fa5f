package export

import (
	"fmt"
	"sort"
	"strings"
)

// Report summarizes an export run: what was saved, and exactly which slots
// and resources were skipped and why.
type Report struct {
	RunID          string
	ExportDir      string
	Documents      []string
	SkippedSlots   map[int]error
	ResourceErrors map[string]error
}

// Complete reports whether every slot made it into the saved documents.
func (r *Report) Complete() bool {
	return len(r.SkippedSlots) == 0
}

// Summary renders a human-readable report for the CLI.
func (r *Report) Summary() string {
	var b strings.Builder

	if len(r.Documents) == 0 {
		fmt.Fprintf(&b, "Export %s produced no documents\n", r.RunID)
	} else {
		fmt.Fprintf(&b, "Export %s finished, files saved to %s\n", r.RunID, r.ExportDir)
		for _, doc := range r.Documents {
			fmt.Fprintf(&b, "  %s\n", doc)
		}
	}

	if len(r.SkippedSlots) > 0 {
		slots := make([]int, 0, len(r.SkippedSlots))
		for slot := range r.SkippedSlots {
			slots = append(slots, slot)
		}
		sort.Ints(slots)

		fmt.Fprintf(&b, "Skipped %d slot(s):\n", len(slots))
		for _, slot := range slots {
			fmt.Fprintf(&b, "  slot %d: %v\n", slot, r.SkippedSlots[slot])
		}
	}

	return b.String()
}
