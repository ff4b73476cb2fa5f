package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// PureGo is a Transformer implemented entirely with the Go image stack.
// JPEG is the canonical artifact format.
type PureGo struct {
	// ShavePercent is the fraction of each edge removed before the center
	// crop in CropAndReshape (border trim).
	ShavePercent float64
}

// NormalizeFormat converts an artifact to JPEG. An input that is already a
// JPEG is returned unchanged, and a JPEG produced by a prior run is reused
// without reconversion.
func (t *PureGo) NormalizeFormat(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".jpg" || ext == ".jpeg" {
		return path, nil
	}

	jpegPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".jpg"
	if _, err := os.Stat(jpegPath); err == nil {
		return jpegPath, nil
	}

	img, err := decodeFile(path)
	if err != nil {
		return "", err
	}
	if err := encodeJPEG(jpegPath, img, defaultEncodeQuality); err != nil {
		return "", err
	}
	return jpegPath, nil
}

// Compress re-encodes the artifact at the given JPEG quality.
func (t *PureGo) Compress(path string, quality int) error {
	img, err := decodeFile(path)
	if err != nil {
		return err
	}
	return encodeJPEG(path, img, quality)
}

// CropAndReshape shaves a thin border off every edge and then center-crops
// the artifact to the target aspect ratio.
func (t *PureGo) CropAndReshape(path string, aspectWidth, aspectHeight float64) error {
	img, err := decodeFile(path)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	shaveX := int(float64(width) * t.ShavePercent / 100.0)
	shaveY := int(float64(height) * t.ShavePercent / 100.0)
	width -= 2 * shaveX
	height -= 2 * shaveY

	// Center-crop the shaved region to the target aspect ratio.
	target := aspectWidth / aspectHeight
	cropW := width
	cropH := height
	if float64(width)/float64(height) > target {
		cropW = int(math.Round(float64(height) * target))
	} else {
		cropH = int(math.Round(float64(width) / target))
	}

	offsetX := bounds.Min.X + shaveX + (width-cropW)/2
	offsetY := bounds.Min.Y + shaveY + (height-cropH)/2

	cropped := image.NewRGBA(image.Rect(0, 0, cropW, cropH))
	draw.Copy(cropped, image.Point{}, img, image.Rect(offsetX, offsetY, offsetX+cropW, offsetY+cropH), draw.Src, nil)

	return encodeJPEG(path, cropped, defaultEncodeQuality)
}

// Downsize scales the artifact to the given percentage of its current size.
func (t *PureGo) Downsize(path string, percent float64) error {
	img, err := decodeFile(path)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	newWidth := int(float64(bounds.Dx()) * percent / 100.0)
	newHeight := int(float64(bounds.Dy()) * percent / 100.0)
	if newWidth < 1 || newHeight < 1 {
		return fmt.Errorf("downsize to %.0f%% would produce an empty image", percent)
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	return encodeJPEG(path, resized, defaultEncodeQuality)
}

// InspectGeometry reads the artifact's pixel dimensions without decoding
// the full image.
func (t *PureGo) InspectGeometry(path string) (int, int, error) {
	file, err := os.Open(path) //nolint:gosec // artifact path produced by the pipeline
	if err != nil {
		return 0, 0, fmt.Errorf("could not open image: %w", err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read image geometry: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// defaultEncodeQuality is used for transforms that are not themselves the
// compression step, keeping detail until compression runs.
const defaultEncodeQuality = 92

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path) //nolint:gosec // artifact path produced by the pipeline
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return img, nil
}

// encodeJPEG atomically overwrites path with the JPEG encoding of img.
func encodeJPEG(path string, img image.Image, quality int) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}

	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: quality}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close image: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace image: %w", err)
	}
	return nil
}
