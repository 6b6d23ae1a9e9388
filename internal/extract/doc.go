// Package extract reduces a selected plate polygon to rasters usable by the
// recognition stage.
//
// RasterizeMask turns the polygon into a fresh binary mask the size of the
// source image. ApplyMask, BoundingBoxOf and Crop are independent, composable
// operations on a completed mask: keep-inside/zero-outside masking, tightest
// bounding box over the filled pixels, and an inclusive sub-raster slice.
//
// All operations allocate their outputs; callers own the returned rasters and
// nothing aliases the inputs.
package extract
