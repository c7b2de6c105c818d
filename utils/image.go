package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// CompressImage downscales and re-encodes an image so neither dimension
// exceeds the given bounds, preserving aspect ratio. Returns the JPEG bytes
// and "image/jpeg". Bytes that do not decode as an image are returned
// unchanged with an empty content type so callers can pass non-image files
// (consent PDFs) straight through.
func CompressImage(data []byte, maxWidth, maxHeight, quality int) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, "", nil
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := 1.0
	if w > maxWidth {
		scale = float64(maxWidth) / float64(w)
	}
	if h > maxHeight {
		if s := float64(maxHeight) / float64(h); s < scale {
			scale = s
		}
	}

	if scale < 1.0 {
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}
