package imaging

// Conditioning stage names used in ConditioningError.
const (
	StageNormalize = "normalize"
	StageInspect   = "inspect"
	StageCompress  = "compress"
	StageReshape   = "reshape"
	StageDownsize  = "downsize"
)

// Conditioner applies the conditioning pipeline to fetched artifacts.
type Conditioner struct {
	transformer     Transformer
	aspectWidth     float64
	aspectHeight    float64
	quality         int
	downsizePercent float64
	policy          Policy
}

// NewConditioner creates a conditioner targeting the given card aspect
// ratio, compression quality and downsize scale.
func NewConditioner(t Transformer, aspectWidth, aspectHeight float64, quality int, downsizePercent float64, policy Policy) *Conditioner {
	return &Conditioner{
		transformer:     t,
		aspectWidth:     aspectWidth,
		aspectHeight:    aspectHeight,
		quality:         quality,
		downsizePercent: downsizePercent,
		policy:          policy,
	}
}

// Condition normalizes the artifact's format, inspects its geometry, and
// applies only the still-needed transforms in fixed order: compression
// first (it preserves more detail at the original resolution), then
// reshape, then downsize. It returns the path of the conditioned artifact,
// which replaces the original reference for the resource. Failures carry
// the resource id and the failing stage.
func (c *Conditioner) Condition(resourceID, path string) (string, error) {
	conditioned, err := c.transformer.NormalizeFormat(path)
	if err != nil {
		return "", &ConditioningError{ResourceID: resourceID, Stage: StageNormalize, Err: err}
	}

	needs, err := InspectNeeds(c.transformer, conditioned, c.aspectWidth, c.aspectHeight, c.policy)
	if err != nil {
		return "", &ConditioningError{ResourceID: resourceID, Stage: StageInspect, Err: err}
	}

	if needs.Compress {
		if err := c.transformer.Compress(conditioned, c.quality); err != nil {
			return "", &ConditioningError{ResourceID: resourceID, Stage: StageCompress, Err: err}
		}
	}
	if needs.Reshape {
		if err := c.transformer.CropAndReshape(conditioned, c.aspectWidth, c.aspectHeight); err != nil {
			return "", &ConditioningError{ResourceID: resourceID, Stage: StageReshape, Err: err}
		}
	}
	if needs.Downsize {
		if err := c.transformer.Downsize(conditioned, c.downsizePercent); err != nil {
			return "", &ConditioningError{ResourceID: resourceID, Stage: StageDownsize, Err: err}
		}
	}

	return conditioned, nil
}
