package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, width, height int) stdimage.Image {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestValidFilename(t *testing.T) {
	valid := []string{"me.jpg", "me.jpeg", "me.png", "ME.PNG", "dir/photo.JPG"}
	for _, name := range valid {
		assert.True(t, ValidFilename(name), name)
	}

	invalid := []string{"me.gif", "me.txt", "me", "me.png.exe", "jpg"}
	for _, name := range invalid {
		assert.False(t, ValidFilename(name), name)
	}
}

func TestNormalizeResizesToTargetWidthAndReencodesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(t, 600, 400), nil))

	out, err := Normalize(buf.Bytes())
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	// Aspect ratio preserved.
	assert.Equal(t, 200, decoded.Bounds().Dy())
}

func TestNormalizeAcceptsPNGInput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(t, 90, 30)))

	out, err := Normalize(buf.Bytes())
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
	assert.Equal(t, 100, decoded.Bounds().Dy())
}

func TestNormalizeRejectsNonImagePayload(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"))
	assert.Error(t, err)

	_, err = Normalize(nil)
	assert.Error(t, err)
}
