// Package render draws localization results back onto images for display:
// the selected quadrilateral, its rectangle primitive, and the recognized
// plate text. Output images are always fresh copies.
package render
