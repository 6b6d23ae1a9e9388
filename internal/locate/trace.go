package locate

import "image"

// TraceBoundaries scans a binary raster and returns one closed contour per
// maximal 8-connected foreground region. Non-zero pixels are foreground.
//
// Each region is first grouped by an iterative flood fill, then its outer
// boundary is walked with Moore-neighbor tracing starting from the region's
// topmost-leftmost pixel. Collinear intermediate points along straight runs
// are dropped during the walk, so a clean rectangle comes back as just its
// four corners. Compression does not affect area computation or polygon
// approximation downstream.
//
// Contours are produced in raster scan order of their starting pixels, which
// makes repeated runs on the same input bit-identical. No ordering guarantee
// beyond determinism is provided; ranking happens in RankByArea.
//
// Degenerate regions are valid: a single pixel yields a 1-point contour and a
// 1-pixel-wide line yields an out-and-back contour, both with area 0.
//
// A raster with zero width or height returns ErrEmptyInput. An all-zero
// raster returns an empty contour set and nil error.
func TraceBoundaries(edges *image.Gray) ([]Contour, error) {
	bounds := edges.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyInput
	}

	foreground := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return edges.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y != 0
	}

	labels := make([]int, width*height)
	contours := make([]Contour, 0)
	next := 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !foreground(x, y) || labels[y*width+x] != 0 {
				continue
			}
			// Scan order guarantees (x,y) is the topmost-leftmost pixel
			// of this region, a valid Moore tracing start.
			labelRegion(labels, width, height, x, y, next, foreground)
			contours = append(contours, traceBoundary(labels, width, height, next, x, y))
			next++
		}
	}

	return contours, nil
}

// labelRegion performs iterative flood fill from a starting point, marking
// every 8-connected foreground pixel with the given label.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large regions.
func labelRegion(labels []int, width, height, startX, startY, label int, foreground func(x, y int) bool) {
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !foreground(p.X, p.Y) || labels[p.Y*width+p.X] != 0 {
			continue
		}
		labels[p.Y*width+p.X] = label

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// Clockwise 8-neighborhood order: E, SE, S, SW, W, NW, N, NE.
var (
	mooreDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	mooreDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
)

func mooreDir(dx, dy int) int {
	for i := 0; i < 8; i++ {
		if mooreDX[i] == dx && mooreDY[i] == dy {
			return i
		}
	}
	return 0
}

// traceBoundary walks the outer boundary of the labeled region clockwise
// using Moore-neighbor tracing. (sx,sy) must be the topmost-leftmost pixel of
// the region.
//
// Termination uses Jacob's stopping criterion: the walk ends when it is about
// to leave the start pixel toward the same second pixel as the initial step.
// This lets thin structures be traversed out-and-back without stopping early.
func traceBoundary(labels []int, width, height, label, sx, sy int) Contour {
	isLabel := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return labels[y*width+x] == label
	}

	pts := make(Contour, 0, 64)
	appendPoint := func(x, y int) {
		if n := len(pts); n >= 2 {
			// Drop the middle point of a straight same-direction run. The
			// dot product guard keeps reversal points, so out-and-back
			// traversals of 1-pixel-wide structures retain both endpoints.
			a, b := pts[n-2], pts[n-1]
			cross := (b.X-a.X)*(y-b.Y) - (b.Y-a.Y)*(x-b.X)
			dot := (b.X-a.X)*(x-b.X) + (b.Y-a.Y)*(y-b.Y)
			if cross == 0 && dot > 0 {
				pts = pts[:n-1]
			}
		}
		pts = append(pts, Point{X: x, Y: y})
	}

	cx, cy := sx, sy
	px, py := sx-1, sy // previous position seeds the scan direction
	appendPoint(cx, cy)

	var secondX, secondY int
	hasSecond := false
	maxSteps := 4*width*height + 8

	for steps := 0; steps < maxSteps; steps++ {
		start := (mooreDir(px-cx, py-cy) + 1) % 8
		nx, ny := 0, 0
		found := false
		for k := 0; k < 8; k++ {
			i := (start + k) % 8
			tx, ty := cx+mooreDX[i], cy+mooreDY[i]
			if isLabel(tx, ty) {
				nx, ny = tx, ty
				found = true
				break
			}
		}
		if !found {
			break // isolated single pixel
		}
		if cx == sx && cy == sy && hasSecond && nx == secondX && ny == secondY {
			break // about to repeat the initial move; the loop is closed
		}
		px, py = cx, cy
		cx, cy = nx, ny
		if !hasSecond {
			secondX, secondY = cx, cy
			hasSecond = true
		}
		if last := pts[len(pts)-1]; last.X != cx || last.Y != cy {
			appendPoint(cx, cy)
		}
	}

	return closeContour(pts)
}

// closeContour removes a duplicated closing point and compresses collinear
// runs across the implicit closing edge, so the wrap-around seam gets the
// same treatment as the rest of the boundary.
func closeContour(pts Contour) Contour {
	if n := len(pts); n >= 2 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	straightThrough := func(a, b, c Point) bool {
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		dot := (b.X-a.X)*(c.X-b.X) + (b.Y-a.Y)*(c.Y-b.Y)
		return cross == 0 && dot > 0
	}
	for len(pts) >= 3 && straightThrough(pts[len(pts)-2], pts[len(pts)-1], pts[0]) {
		pts = pts[:len(pts)-1]
	}
	for len(pts) >= 3 && straightThrough(pts[len(pts)-1], pts[0], pts[1]) {
		pts = pts[1:]
	}
	return pts
}
