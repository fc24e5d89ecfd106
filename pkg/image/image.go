// Package image normalizes avatar uploads: decode, resize to a fixed width,
// re-encode as PNG. The stored payload is therefore always a PNG regardless
// of what was uploaded.
package image

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// MaxUploadSize caps avatar uploads at 1MB.
	MaxUploadSize = 1000000

	targetWidth = 300
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidFilename reports whether the upload's filename carries an accepted
// image extension.
func ValidFilename(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Normalize decodes the payload, scales it to the target width preserving
// aspect ratio, and re-encodes it as PNG. Payloads that do not decode as an
// image are rejected, whatever their filename claimed.
func Normalize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	resized := imaging.Resize(img, targetWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
