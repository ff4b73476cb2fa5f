// Package imaging conditions downloaded card images into a canonical
// print-ready form: normalized format, optional compression, a crop to the
// target card aspect ratio, and optional downsizing. Conditioning decisions
// are made by inspecting the artifact's current geometry, so re-running the
// pipeline on an already-conditioned artifact is a no-op.
package imaging

import "fmt"

// Transformer is the image-transform capability consumed by the
// conditioning pipeline. Every transform overwrites the artifact in place;
// NormalizeFormat returns the path of the canonical-format artifact, which
// may differ from the input path.
type Transformer interface {
	NormalizeFormat(path string) (string, error)
	Compress(path string, quality int) error
	CropAndReshape(path string, aspectWidth, aspectHeight float64) error
	Downsize(path string, percent float64) error
	InspectGeometry(path string) (width, height int, err error)
}

// ConditioningError records a failed conditioning step for one resource.
// Like fetch failures it is non-fatal: the resource's dependent slots are
// excluded from layout and reported.
type ConditioningError struct {
	ResourceID string
	Stage      string
	Err        error
}

func (e *ConditioningError) Error() string {
	return fmt.Sprintf("could not condition resource %s at stage %s: %v", e.ResourceID, e.Stage, e.Err)
}

func (e *ConditioningError) Unwrap() error { return e.Err }
