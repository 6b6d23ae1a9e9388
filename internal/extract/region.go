package extract

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/locate"
)

// Recoverable extraction failures, matched with errors.Is.
var (
	// ErrEmptyMask is returned by BoundingBoxOf when the mask has no filled
	// pixels. If plate selection succeeded first this indicates an upstream
	// logic error, but it is reported rather than crashing the pipeline.
	ErrEmptyMask = errors.New("mask has no filled pixels")

	// ErrOutOfBounds is returned by Crop for a box that exceeds the source
	// raster's extent. Boxes derived from a same-sized mask never trip it;
	// the check is defensive because box and source are supplied
	// independently in general use.
	ErrOutOfBounds = errors.New("crop box exceeds raster bounds")
)

// ApplyMask keeps each source pixel where the mask is 255 and zeroes it
// elsewhere. Source and mask must have equal dimensions. The output is a
// fresh raster whose channel count matches the source: grayscale in,
// grayscale out; anything else comes back as RGBA with masked-out pixels
// opaque black.
//
// Applying the same mask twice yields the same result as applying it once.
func ApplyMask(src image.Image, mask *image.Gray) (image.Image, error) {
	sb := src.Bounds()
	mb := mask.Bounds()
	if sb.Dx() != mb.Dx() || sb.Dy() != mb.Dy() {
		return nil, fmt.Errorf("mask size %dx%d does not match source size %dx%d",
			mb.Dx(), mb.Dy(), sb.Dx(), sb.Dy())
	}

	width := sb.Dx()
	height := sb.Dy()

	if gray, ok := src.(*image.Gray); ok {
		out := image.NewGray(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if mask.GrayAt(x+mb.Min.X, y+mb.Min.Y).Y == 255 {
					out.SetGray(x, y, gray.GrayAt(x+sb.Min.X, y+sb.Min.Y))
				}
			}
		}
		return out, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	black := color.RGBA{A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.GrayAt(x+mb.Min.X, y+mb.Min.Y).Y == 255 {
				out.Set(x, y, src.At(x+sb.Min.X, y+sb.Min.Y))
			} else {
				out.Set(x, y, black)
			}
		}
	}
	return out, nil
}

// BoundingBoxOf scans the mask and returns the tightest axis-aligned box
// enclosing every 255-valued pixel. An all-zero mask returns ErrEmptyMask.
func BoundingBoxOf(mask *image.Gray) (locate.Bounds, error) {
	bounds := mask.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	box := locate.Bounds{X1: width, Y1: height, X2: -1, Y2: -1}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y != 255 {
				continue
			}
			if x < box.X1 {
				box.X1 = x
			}
			if x > box.X2 {
				box.X2 = x
			}
			if y < box.Y1 {
				box.Y1 = y
			}
			if y > box.Y2 {
				box.Y2 = y
			}
		}
	}

	if box.X2 < 0 {
		return locate.Bounds{}, ErrEmptyMask
	}
	return box, nil
}

// Crop returns the sub-raster covered by box, inclusive on all four edges.
// A box outside the source extent (or inverted) returns ErrOutOfBounds.
func Crop(src image.Image, box locate.Bounds) (image.Image, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if box.X1 > box.X2 || box.Y1 > box.Y2 ||
		box.X1 < 0 || box.Y1 < 0 || box.X2 >= width || box.Y2 >= height {
		return nil, fmt.Errorf("%w: box (%d,%d)-(%d,%d) on %dx%d raster",
			ErrOutOfBounds, box.X1, box.Y1, box.X2, box.Y2, width, height)
	}

	rect := image.Rect(
		box.X1+bounds.Min.X, box.Y1+bounds.Min.Y,
		box.X2+1+bounds.Min.X, box.Y2+1+bounds.Min.Y,
	)
	return imaging.Crop(src, rect), nil
}
