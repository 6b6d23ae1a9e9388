package locate

// Tunable selection defaults. Neither value has a principled derivation; they
// are starting points that callers tune per image resolution.
const (
	// DefaultEpsilon is the approximation tolerance in raster units.
	DefaultEpsilon = 10.0

	// DefaultTopK bounds how many area-ranked candidates are examined.
	DefaultTopK = 10
)

// State describes where a selection pass ended.
type State int

const (
	// Searching means no selection pass has completed yet.
	Searching State = iota

	// Found means a candidate polygon was accepted.
	Found

	// Exhausted means every ranked candidate was rejected.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// QuadFilter decides whether an approximated polygon is an acceptable plate
// candidate. The default implementation only counts vertices; substituting a
// stricter test (convexity, aspect ratio, angle orthogonality) changes
// selection behavior without touching tracing or approximation.
type QuadFilter interface {
	Accept(p Polygon) bool
}

// VertexCountFilter accepts polygons with exactly Vertices vertices.
//
// With Vertices = 4 this is the classic "first 4-gon wins" plate heuristic:
// it conflates "looks rectangular" with "is the plate" and is a known source
// of false positives. Treat its result as a heuristic, not a guarantee.
type VertexCountFilter struct {
	Vertices int
}

// Accept reports whether p has exactly the required vertex count.
func (f VertexCountFilter) Accept(p Polygon) bool { return len(p) == f.Vertices }

// Selector picks the plate polygon out of a traced contour set by ranking
// candidates by area, approximating each with a fixed tolerance, and
// accepting the first one the filter passes.
//
// A Selector holds no state between calls beyond the last pass outcome; it is
// cheap to construct and safe to reuse across independent inputs.
type Selector struct {
	// Epsilon is the approximation tolerance handed to Approximate.
	Epsilon float64

	// TopK bounds the number of area-ranked candidates examined.
	TopK int

	// Filter decides candidate acceptance. Nil means the default
	// exactly-4-vertices filter.
	Filter QuadFilter

	state State
}

// NewSelector returns a Selector with the default tolerance, candidate bound
// and 4-vertex filter.
func NewSelector() *Selector {
	return &Selector{Epsilon: DefaultEpsilon, TopK: DefaultTopK}
}

// Select walks the ranked candidates in order and returns the first
// approximation the filter accepts. The first match wins; no attempt is made
// to disambiguate multiple acceptable candidates.
//
// When every candidate is rejected (or the ranked list is empty), Select
// returns ErrNoCandidate. That outcome is recoverable: the caller may retry
// with a different Epsilon or TopK without re-tracing upstream stages.
func (s *Selector) Select(contours []Contour) (Polygon, error) {
	s.state = Searching

	filter := s.Filter
	if filter == nil {
		filter = VertexCountFilter{Vertices: 4}
	}

	for _, c := range RankByArea(contours, s.TopK) {
		approx := Approximate(c, s.Epsilon)
		if filter.Accept(approx) {
			s.state = Found
			return approx, nil
		}
	}

	s.state = Exhausted
	return nil, ErrNoCandidate
}

// State reports the outcome of the most recent Select call.
func (s *Selector) State() State { return s.state }
