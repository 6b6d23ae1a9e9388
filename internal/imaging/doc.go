// Package imaging provides the image processing stages that surround plate
// localization: loading and saving files, grayscale conversion, denoising,
// and Canny edge detection.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward. Every function allocates its output; inputs are never
// mutated.
//
// The edge detector produces the binary raster consumed by the locate
// package's boundary tracer: white (255) pixels mark detected edges, black
// (0) pixels mark everything else.
package imaging
