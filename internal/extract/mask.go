package extract

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/locate"
)

// RasterizeMask fills the polygon onto a freshly allocated single-channel
// raster of the given size. Every pixel strictly inside the polygon and on
// its boundary is 255; all others are 0.
//
// The interior is filled with an even-odd scanline rule and the boundary
// edges are then drawn explicitly, so the mask outline coincides pixel-exact
// with the polygon edges. Re-tracing the mask recovers an equivalent polygon
// under the approximation tolerance.
//
// The returned mask is owned by the caller; no input raster is aliased or
// mutated. Polygons with fewer than 3 vertices mark only their own points.
func RasterizeMask(poly locate.Polygon, width, height int) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	if len(poly) == 0 || width <= 0 || height <= 0 {
		return mask
	}

	white := color.Gray{Y: 255}
	if len(poly) < 3 {
		for _, p := range poly {
			if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
				mask.SetGray(p.X, p.Y, white)
			}
		}
		return mask
	}

	n := len(poly)
	box := poly.BoundingBox()
	yTop := box.Y1
	if yTop < 0 {
		yTop = 0
	}
	yBottom := box.Y2
	if yBottom > height-1 {
		yBottom = height - 1
	}

	xs := make([]float64, 0, n)
	for y := yTop; y <= yBottom; y++ {
		// Even-odd rule: collect edge crossings for this scanline, then
		// fill between alternating pairs. Half-open spans in Y keep shared
		// vertices from being counted twice.
		xs = xs[:0]
		for i := 0; i < n; i++ {
			p1 := poly[i]
			p2 := poly[(i+1)%n]
			if p1.Y == p2.Y {
				continue
			}
			if (y >= p1.Y && y < p2.Y) || (y >= p2.Y && y < p1.Y) {
				t := float64(y-p1.Y) / float64(p2.Y-p1.Y)
				xs = append(xs, float64(p1.X)+t*float64(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x1 := int(math.Ceil(xs[i]))
			x2 := int(math.Floor(xs[i+1]))
			if x1 < 0 {
				x1 = 0
			}
			if x2 > width-1 {
				x2 = width - 1
			}
			for x := x1; x <= x2; x++ {
				mask.SetGray(x, y, white)
			}
		}
	}

	// The scanline pass can miss boundary pixels on steep or horizontal
	// edges; drawing the outline guarantees the boundary is part of the mask.
	for i := 0; i < n; i++ {
		drawSegment(mask, poly[i], poly[(i+1)%n], white)
	}

	return mask
}

// drawSegment rasterizes the line from a to b with Bresenham's algorithm,
// clipping to the mask bounds.
func drawSegment(mask *image.Gray, a, b locate.Point, c color.Gray) {
	bounds := mask.Bounds()
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
			mask.SetGray(x0, y0, c)
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

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
