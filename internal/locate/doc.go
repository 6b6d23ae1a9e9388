// Package locate finds the license-plate quadrilateral in a binary edge
// raster.
//
// The package implements the localization half of the recognition pipeline:
//
//  1. Boundary tracing: group 8-connected foreground regions and walk each
//     region's outer boundary (Moore-neighbor tracing), producing closed
//     contours with straight runs compressed to their endpoints.
//  2. Ranking: order contours by enclosed (shoelace) area and keep a bounded
//     top-K subset.
//  3. Approximation: simplify a contour to a minimal-vertex polygon with
//     Ramer-Douglas-Peucker under a distance tolerance.
//  4. Selection: accept the first ranked candidate whose approximation passes
//     the quadrilateral filter.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0,0) at the
// top-left corner, X increasing rightward, Y increasing downward.
//
// # Determinism
//
// Every operation is a pure function of its inputs. Tracing emits contours in
// raster scan order, ranking is a stable sort, and approximation breaks
// distance ties by lowest index, so identical inputs and parameters always
// produce bit-identical results.
//
// # Limitations
//
// Selection stops at the first polygon with exactly 4 vertices. It does not
// check convexity, edge-length ratio, or angle orthogonality, so busy scenes
// can produce false positives. Nested contours (characters inside the plate)
// are ranked purely by area alongside everything else; if an inner contour
// outranks the true plate boundary the heuristic misfires.
package locate
