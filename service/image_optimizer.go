package service

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Default optimization settings for card snapshots
const (
	defaultMaxDim  = 800
	defaultQuality = 75
)

// OptimizeImage decodes raw image bytes (PNG, JPEG, ...), shrinks the image so
// its longest side is at most maxDim while keeping the aspect ratio, and
// re-encodes it as JPEG with the given quality. Smaller images are not upscaled.
func OptimizeImage(imageData []byte, maxDim int, quality int) ([]byte, error) {
	if maxDim <= 0 {
		maxDim = defaultMaxDim
	}
	if quality <= 0 || quality > 100 {
		quality = defaultQuality
	}

	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resizeToFit(img, maxDim)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

func resizeToFit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDim && height <= maxDim {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDim
		newHeight = int(float64(height) * float64(maxDim) / float64(width))
	} else {
		newHeight = maxDim
		newWidth = int(float64(width) * float64(maxDim) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
}
