package locate

import "errors"

// Recoverable localization failures. Callers match them with errors.Is and
// may retry with adjusted epsilon or topK without restarting the pipeline.
var (
	// ErrEmptyInput is returned for a raster with zero area (0 width or
	// height). An all-zero raster is not an error; it simply yields no
	// contours.
	ErrEmptyInput = errors.New("raster has zero area")

	// ErrNoCandidate is returned when every ranked candidate was approximated
	// without producing an acceptable quadrilateral. Localization failed, but
	// the pipeline may retry with different parameters.
	ErrNoCandidate = errors.New("no quadrilateral candidate found")
)
