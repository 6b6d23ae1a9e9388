package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/locate"
)

// labelOffset is the vertical gap in pixels between the plate region and the
// recognized-text label drawn beneath it.
const labelOffset = 20

// AnnotatePlate draws the located plate onto a copy of the source image:
// the quadrilateral's edges, the axis-aligned rectangle spanned by the first
// and third traversal points, and, when non-empty, the recognized text
// beneath the region.
//
// colorHex selects the overlay color ("#RRGGBB"); an unparsable value falls
// back to green. The source image is never modified.
func AnnotatePlate(img image.Image, loc locate.Polygon, text string, colorHex string) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	col := overlayColor(colorHex)

	n := len(loc)
	for i := 0; i < n; i++ {
		drawLine(out, loc[i], loc[(i+1)%n], col)
	}

	// Opposite corners in traversal order double as a rectangle primitive.
	if n >= 3 {
		drawRect(out, loc[0], loc[2], col)
	}

	if text != "" && n > 0 {
		box := loc.BoundingBox()
		drawLabel(out, text, box.X1, box.Y2+labelOffset, col)
	}

	return out
}

// overlayColor parses a #RRGGBB hex string, defaulting to green when the
// value is malformed.
func overlayColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{G: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawRect outlines the axis-aligned rectangle with corners a and b.
func drawRect(img *image.RGBA, a, b locate.Point, col color.RGBA) {
	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	drawLine(img, locate.Point{X: x1, Y: y1}, locate.Point{X: x2, Y: y1}, col)
	drawLine(img, locate.Point{X: x2, Y: y1}, locate.Point{X: x2, Y: y2}, col)
	drawLine(img, locate.Point{X: x2, Y: y2}, locate.Point{X: x1, Y: y2}, col)
	drawLine(img, locate.Point{X: x1, Y: y2}, locate.Point{X: x1, Y: y1}, col)
}

// drawLine rasterizes the segment from a to b with Bresenham's algorithm,
// clipping to the image bounds.
func drawLine(img *image.RGBA, a, b locate.Point, col color.RGBA) {
	bounds := img.Bounds()
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	for {
		if x0 >= bounds.Min.X && x0 < bounds.Max.X && y0 >= bounds.Min.Y && y0 < bounds.Max.Y {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLabel renders text at (x, y) with the fixed 7x13 basic font.
func drawLabel(img *image.RGBA, text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
