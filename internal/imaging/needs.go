package imaging

import "math"

// Policy configures the conditioning steps that are not decided by
// geometry. Reshape need is always derived from the artifact itself;
// compression and downsizing are operator choices and apply on every run,
// so repeated conditioning rewrites the artifact when either is enabled
// (downsizing compounds across runs). Byte-identical repeat runs hold only
// under the default (all-off) policy.
type Policy struct {
	Compress bool
	Downsize bool
}

// Needs lists the conditioning steps an artifact still requires.
type Needs struct {
	Compress bool
	Reshape  bool
	Downsize bool
}

// NeedsReshape reports whether an artifact of the given pixel dimensions
// deviates from the target aspect ratio. The comparison divides each
// dimension by its aspect unit and compares the ratios at one decimal of
// precision, tolerating small crop rounding differences.
func NeedsReshape(width, height int, aspectWidth, aspectHeight float64) bool {
	widthRel := math.Round(float64(width)/aspectWidth*10) / 10
	heightRel := math.Round(float64(height)/aspectHeight*10) / 10
	return widthRel != heightRel
}

// InspectNeeds derives the needed conditioning steps from the artifact's
// current geometry and the configured policy.
func InspectNeeds(t Transformer, path string, aspectWidth, aspectHeight float64, policy Policy) (Needs, error) {
	width, height, err := t.InspectGeometry(path)
	if err != nil {
		return Needs{}, err
	}

	return Needs{
		Compress: policy.Compress,
		Reshape:  NeedsReshape(width, height, aspectWidth, aspectHeight),
		Downsize: policy.Downsize,
	}, nil
}
