package certify

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	// Register the formats templates are accepted in.
	_ "image/jpeg"
	_ "image/png"
)

// DecodeTemplate decodes png/jpeg template bytes into a mutable RGBA
// drawing surface. Callers get an independent copy per composition; drawing
// mutates it in place.
func DecodeTemplate(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateDecode, err)
	}

	return cloneRGBA(src)
}

func cloneRGBA(src image.Image) (*image.RGBA, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrTemplateBounds
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, nil
}

// EncodePNG serializes an image to lossless PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
