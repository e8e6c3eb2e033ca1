// Package imaging shrinks uploaded photos before they are sent to the image service.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// Decoders for the formats accepted by the upload form.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth and MaxHeight bound the compressed image.
	MaxWidth  = 400
	MaxHeight = 400

	// Quality is the JPEG quality used when re-encoding.
	Quality = 70

	dataURLPrefix = "data:image/jpeg;base64,"
)

// ErrDecode is returned when the upload is not a decodable image.
var ErrDecode = errors.New("could not decode image")

// Fit returns the dimensions of a w×h image scaled down to fit within maxW×maxH,
// preserving aspect ratio. Images already inside the bounds are returned unchanged.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		nh := h * maxW / w
		if nh < 1 {
			nh = 1
		}
		return maxW, nh
	}
	nw := w * maxH / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxH
}

// Compress decodes r, scales it to fit within MaxWidth×MaxHeight and re-encodes it
// as JPEG at Quality.
func Compress(r io.Reader) ([]byte, image.Rectangle, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), MaxWidth, MaxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), dst.Bounds(), nil
}

// CompressToDataURL compresses r and returns it as a base64 JPEG data URL,
// the form the image service expects.
func CompressToDataURL(r io.Reader) (string, error) {
	data, _, err := Compress(r)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}
