// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Card geometry constants
const (
	// CardWidthIn is the width of a single-card PDF page in inches
	CardWidthIn = 2.73

	// CardHeightIn is the height of a single-card PDF page in inches
	CardHeightIn = 3.71

	// CardAspectWidth and CardAspectHeight describe the target card aspect
	// ratio (63:88, the physical card size in millimeters)
	CardAspectWidth  = 63.0
	CardAspectHeight = 88.0
)

// Export constants
const (
	// DefaultCardsPerDocument is the default number of cards batched into
	// one sequential-mode PDF before a new file is started
	DefaultCardsPerDocument = 60

	// DefaultExportRoot is the directory where export runs are written
	DefaultExportRoot = "export"
)

// Acquisition constants
const (
	// DefaultWorkers is the default number of parallel download workers
	DefaultWorkers = 5
)

// Conditioning constants
const (
	// JPEGQuality is the quality target used when compressing card images
	JPEGQuality = 85

	// ShavePercent is the fraction of each image edge removed before the
	// center crop, trimming printed borders (2.8% per side)
	ShavePercent = 2.8

	// DownsizePercent is the scale applied when an image is downsized
	DownsizePercent = 60.0
)
