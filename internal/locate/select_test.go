package locate

import (
	"errors"
	"testing"
)

func TestSelector_FilledRectangleScenario(t *testing.T) {
	img := createEdgeRaster(100, 100)
	fillRect(img, 10, 20, 80, 50)

	contours, err := TraceBoundaries(img)
	if err != nil {
		t.Fatalf("TraceBoundaries failed: %v", err)
	}

	s := NewSelector()
	poly, err := s.Select(contours)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if s.State() != Found {
		t.Errorf("Expected state %v, got %v", Found, s.State())
	}
	if len(poly) != 4 {
		t.Fatalf("Expected 4-vertex polygon, got %d: %v", len(poly), poly)
	}

	box := poly.BoundingBox()
	want := Bounds{X1: 10, Y1: 20, X2: 80, Y2: 50}
	if box != want {
		t.Errorf("Expected bounding box %+v, got %+v", want, box)
	}
}

func TestSelector_LargestCandidateWins(t *testing.T) {
	img := createEdgeRaster(200, 200)
	fillRect(img, 10, 10, 30, 30)    // small square
	fillRect(img, 50, 50, 150, 100)  // the plate-like rectangle

	contours, err := TraceBoundaries(img)
	if err != nil {
		t.Fatalf("TraceBoundaries failed: %v", err)
	}

	poly, err := NewSelector().Select(contours)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// Both regions are quads; ranking must pick the larger one first.
	box := poly.BoundingBox()
	want := Bounds{X1: 50, Y1: 50, X2: 150, Y2: 100}
	if box != want {
		t.Errorf("Expected the larger rectangle %+v, got %+v", want, box)
	}
}

func TestSelector_NoCandidate(t *testing.T) {
	s := NewSelector()

	_, err := s.Select(nil)
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("Expected ErrNoCandidate, got %v", err)
	}
	if s.State() != Exhausted {
		t.Errorf("Expected state %v, got %v", Exhausted, s.State())
	}
}

func TestSelector_AllCandidatesRejected(t *testing.T) {
	// A triangle never passes the 4-vertex filter.
	contours := []Contour{{{0, 0}, {40, 0}, {20, 30}}}

	s := NewSelector()
	_, err := s.Select(contours)
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("Expected ErrNoCandidate for triangle input, got %v", err)
	}
	if s.State() != Exhausted {
		t.Errorf("Expected state %v, got %v", Exhausted, s.State())
	}
}

func TestSelector_CustomFilter(t *testing.T) {
	contours := []Contour{{{0, 0}, {40, 0}, {20, 30}}}

	s := NewSelector()
	s.Filter = VertexCountFilter{Vertices: 3}
	poly, err := s.Select(contours)
	if err != nil {
		t.Fatalf("Select with triangle filter failed: %v", err)
	}
	if len(poly) != 3 {
		t.Errorf("Expected 3 vertices, got %d", len(poly))
	}
}

func TestSelector_Deterministic(t *testing.T) {
	img := createEdgeRaster(100, 100)
	fillRect(img, 10, 20, 80, 50)
	fillRect(img, 5, 70, 95, 95)

	contours, err := TraceBoundaries(img)
	if err != nil {
		t.Fatalf("TraceBoundaries failed: %v", err)
	}

	first, err := NewSelector().Select(contours)
	if err != nil {
		t.Fatalf("First Select failed: %v", err)
	}
	second, err := NewSelector().Select(contours)
	if err != nil {
		t.Fatalf("Second Select failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Polygon sizes differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Vertex %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Searching, "searching"},
		{Found, "found"},
		{Exhausted, "exhausted"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
