package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// Grayscale converts an image to a single-channel raster using ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B). The grayscale raster is
// what the extraction stage crops and hands to OCR.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	out := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			out.SetGray(x, y, color.Gray{Y: uint8(lum)})
		}
	}
	return out
}

// Denoise smooths the image with a median filter of the given radius before
// edge detection. Median filtering suppresses salt-and-pepper noise while
// keeping edges sharp, which matters because the edge raster drives contour
// tracing. A radius of 0 or less returns the input unchanged.
func Denoise(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return effect.Median(img, radius)
}
