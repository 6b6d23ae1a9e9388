package locate

import "math"

// Approximate simplifies a closed contour into a polygon using the
// Ramer-Douglas-Peucker algorithm with distance tolerance epsilon.
//
// RDP is defined for open curves, so the closed contour is first split at two
// anchors: point 0 and the point farthest from it along the loop. Each half
// is simplified independently and the halves are stitched back together,
// preserving the contour's traversal order. A negative epsilon is treated
// as 0.
//
// Larger epsilon values discard more points (coarser polygons), smaller
// values stay closer to the original boundary; the vertex count never grows
// as epsilon grows. The output is data-dependent and may have fewer than 3
// vertices for degenerate contours, so callers must check the vertex count
// rather than assume a valid polygon.
func Approximate(c Contour, epsilon float64) Polygon {
	n := len(c)
	if n < 3 {
		out := make(Polygon, n)
		copy(out, c)
		return out
	}
	if epsilon < 0 {
		epsilon = 0
	}

	// Anchor the loop at point 0 and the vertex farthest from it. Strict
	// comparison picks the first farthest vertex, keeping runs reproducible.
	far := 0
	maxDist := -1.0
	for i := 1; i < n; i++ {
		dx := float64(c[i].X - c[0].X)
		dy := float64(c[i].Y - c[0].Y)
		if d := dx*dx + dy*dy; d > maxDist {
			maxDist = d
			far = i
		}
	}
	if far == 0 || maxDist == 0 {
		// Every point coincides with point 0.
		return Polygon{c[0]}
	}

	first := simplify(c[:far+1], epsilon)
	wrap := make(Contour, 0, n-far+1)
	wrap = append(wrap, c[far:]...)
	wrap = append(wrap, c[0])
	second := simplify(wrap, epsilon)

	// Both halves keep their endpoints, so the anchors appear in each; take
	// the second half without its shared first and last vertex.
	out := make(Polygon, 0, len(first)+len(second)-2)
	out = append(out, first...)
	out = append(out, second[1:len(second)-1]...)
	return out
}

// simplify runs open-curve RDP on pts, always keeping both endpoints.
func simplify(pts Contour, epsilon float64) Contour {
	if len(pts) < 3 {
		out := make(Contour, len(pts))
		copy(out, pts)
		return out
	}

	a := pts[0]
	b := pts[len(pts)-1]
	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(pts)-1; i++ {
		if d := chordDistance(pts[i], a, b); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= epsilon {
		return Contour{a, b}
	}

	left := simplify(pts[:maxIdx+1], epsilon)
	right := simplify(pts[maxIdx:], epsilon)
	out := make(Contour, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}

// chordDistance returns the perpendicular distance from p to the line through
// a and b, or the distance to a when the chord is degenerate.
func chordDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	return math.Abs(dy*float64(p.X-a.X)-dx*float64(p.Y-a.Y)) / norm
}
