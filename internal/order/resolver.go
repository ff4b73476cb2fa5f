package order

import (
	"fmt"
	"sort"
)

// ResolvedSlot maps a slot index to its final (back, front) resource ids.
type ResolvedSlot struct {
	Index   int
	FrontID string
	BackID  string
}

// ResolutionError indicates a malformed slot/resource mapping. It is fatal
// and aborts an export before any fetching begins.
type ResolutionError struct {
	Slot   int
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve slot %d: %s", e.Slot, e.Reason)
}

// Resolve maps every slot to its (back, front) resource ids, substituting the
// order's default back where a slot has no explicit back. Fronts are
// mandatory and slot indexes must form a contiguous 0-based sequence.
func Resolve(o *CardOrder) ([]ResolvedSlot, error) {
	resolved := make([]ResolvedSlot, 0, len(o.Slots))
	for _, s := range o.Slots {
		if s.Front == "" {
			return nil, &ResolutionError{Slot: s.Index, Reason: "missing front resource"}
		}

		backID := o.DefaultBack
		if s.Back != nil && *s.Back != "" {
			backID = *s.Back
		}
		if backID == "" {
			return nil, &ResolutionError{Slot: s.Index, Reason: "missing back resource and order has no default back"}
		}

		resolved = append(resolved, ResolvedSlot{
			Index:   s.Index,
			FrontID: s.Front,
			BackID:  backID,
		})
	}

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Index < resolved[j].Index })

	for i, s := range resolved {
		if s.Index != i {
			return nil, &ResolutionError{Slot: s.Index, Reason: fmt.Sprintf("slot indexes are not contiguous, expected %d", i)}
		}
	}

	return resolved, nil
}

// DistinctResourceIDs returns the unique resource ids referenced by the
// resolved slots, in first-seen order.
func DistinctResourceIDs(slots []ResolvedSlot) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, s := range slots {
		for _, id := range []string{s.BackID, s.FrontID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
