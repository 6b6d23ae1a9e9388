// Package pipeline wires the processing stages into the end-to-end plate
// recognition flow and provides concurrent batch processing over image files.
//
// The stage order mirrors the classic contour-based recipe: grayscale,
// median denoise, Canny edges, boundary trace, rank-and-approximate
// selection, mask extraction, crop, OCR, annotation. Each stage lives in its
// own package; this one only sequences them and decides which failures are
// fatal.
package pipeline
