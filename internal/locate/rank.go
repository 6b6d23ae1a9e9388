package locate

import "sort"

// RankByArea orders contours by enclosed area, largest first, and returns the
// first min(topK, len(contours)) of them. The sort is stable, with ties
// broken by input order, so identical inputs always rank identically.
//
// A topK of zero or less yields an empty result rather than an error; callers
// handle the "no candidate" path uniformly downstream.
//
// The input slice is not modified.
func RankByArea(contours []Contour, topK int) []Contour {
	if topK <= 0 || len(contours) == 0 {
		return nil
	}

	type candidate struct {
		contour Contour
		area    float64
	}
	ranked := make([]candidate, len(contours))
	for i, c := range contours {
		ranked[i] = candidate{contour: c, area: c.Area()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].area > ranked[j].area
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]Contour, topK)
	for i := 0; i < topK; i++ {
		out[i] = ranked[i].contour
	}
	return out
}
