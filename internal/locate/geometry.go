package locate

// Point represents a 2D pixel coordinate.
//
// The coordinate convention follows standard image bounds: (0,0) is the
// top-left pixel, X increases rightward, Y increases downward.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Contour is an ordered, closed sequence of points tracing one connected
// boundary. Insertion order matters: it defines the traversal direction and
// the starting point used by polygon approximation. The closing edge from the
// last point back to the first is implicit.
type Contour []Point

// Polygon is a contour reduced to its essential vertices. Plate selection
// only accepts 4-vertex polygons, but a Polygon may carry any vertex count,
// including fewer than 3 for degenerate contours.
type Polygon []Point

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// Unlike the half-open convention of image.Rectangle, all four edges are
// inclusive: the box covers pixels (X1,Y1) through (X2,Y2).
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (inclusive)
	Y2 int `json:"y2"` // Bottom edge (inclusive)
}

// Width returns the number of pixel columns covered by the box.
func (b Bounds) Width() int { return b.X2 - b.X1 + 1 }

// Height returns the number of pixel rows covered by the box.
func (b Bounds) Height() int { return b.Y2 - b.Y1 + 1 }

// Area returns the polygon area enclosed by the contour, computed with the
// shoelace formula over the closed point sequence. The result is the absolute
// value, so traversal direction does not matter. Contours with fewer than 3
// points enclose nothing and report 0.
func (c Contour) Area() float64 {
	n := len(c)
	if n < 3 {
		return 0
	}
	sum := 0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return float64(sum) / 2
}

// BoundingBox returns the tightest axis-aligned box enclosing every point of
// the contour. The zero Bounds is returned for an empty contour.
func (c Contour) BoundingBox() Bounds {
	if len(c) == 0 {
		return Bounds{}
	}
	b := Bounds{X1: c[0].X, Y1: c[0].Y, X2: c[0].X, Y2: c[0].Y}
	for _, p := range c[1:] {
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}
	}
	return b
}

// Area reports the shoelace area of the polygon, see Contour.Area.
func (p Polygon) Area() float64 { return Contour(p).Area() }

// BoundingBox returns the tightest box enclosing the polygon's vertices.
func (p Polygon) BoundingBox() Bounds { return Contour(p).BoundingBox() }
