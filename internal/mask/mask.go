// Package mask reshapes raw face images: decode, exact resize, alpha
// shape mask, PNG re-encode.
//
// All masks are applied with the compositing rule
//
//	output alpha = min(source alpha, mask alpha)
//
// so masked-out pixels become fully transparent and masked-in pixels
// keep their original color. The output is always PNG regardless of the
// source format.
package mask

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"

	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// Shape selects the alpha mask applied to a generated image.
type Shape string

const (
	Square  Shape = "square"
	Circle  Shape = "circle"
	Rounded Shape = "rounded"
)

// Valid reports whether s is one of the supported shapes.
func (s Shape) Valid() bool {
	return s == Square || s == Circle || s == Rounded
}

// Error reports undecodable or otherwise unusable input.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("image error: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Apply decodes raw image bytes, resizes to exactly width x height
// (aspect not preserved), shapes the alpha channel per shape, and
// re-encodes as PNG. borderRadius is only consulted for Rounded.
func Apply(raw []byte, width, height int, shape Shape, borderRadius int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, &Error{Err: fmt.Errorf("invalid dimensions %dx%d", width, height)}
	}
	if !shape.Valid() {
		return nil, &Error{Err: fmt.Errorf("unknown shape %q", shape)}
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("decoding source image: %w", err)}
	}

	resized := imaging.Resize(src, width, height, imaging.Lanczos)
	out := clone.AsRGBA(resized)

	switch shape {
	case Circle:
		applyMask(out, circleMask(width, height))
	case Rounded:
		if borderRadius > 0 {
			applyMask(out, roundedMask(width, height, borderRadius))
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, &Error{Err: fmt.Errorf("encoding png: %w", err)}
	}
	return buf.Bytes(), nil
}

// applyMask clears every pixel outside the mask. The masks are binary,
// so min(source, mask) reduces to: outside fully transparent, inside
// untouched.
func applyMask(img *image.RGBA, inside func(x, y int) bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !inside(x, y) {
				i := img.PixOffset(x, y)
				img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
			}
		}
	}
}

// circleMask is anchored at (r, r) with r = min(w,h)/2. When w != h the
// circle sits against the top-left corner, not the image center; that
// anchoring is part of the tool's contract and must not be "fixed".
func circleMask(w, h int) func(x, y int) bool {
	r := float64(min(w, h)) / 2
	return func(x, y int) bool {
		dx := float64(x) + 0.5 - r
		dy := float64(y) + 0.5 - r
		return dx*dx+dy*dy <= r*r
	}
}

// roundedMask covers the full w x h rectangle with quarter-circle
// corners of the given radius. Radii larger than half an edge simply
// merge adjacent arcs.
func roundedMask(w, h, radius int) func(x, y int) bool {
	r := float64(radius)
	fw, fh := float64(w), float64(h)
	return func(x, y int) bool {
		fx := float64(x) + 0.5
		fy := float64(y) + 0.5

		var cx, cy float64
		switch {
		case fx < r && fy < r:
			cx, cy = r, r
		case fx > fw-r && fy < r:
			cx, cy = fw-r, r
		case fx < r && fy > fh-r:
			cx, cy = r, fh-r
		case fx > fw-r && fy > fh-r:
			cx, cy = fw-r, fh-r
		default:
			return true
		}

		dx, dy := fx-cx, fy-cy
		return dx*dx+dy*dy <= r*r
	}
}
