package ocr

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/locate"
)

// minPlateHeight is the crop height below which the plate is upscaled before
// OCR. Tesseract accuracy drops sharply on text under ~30px tall.
const minPlateHeight = 64

// Reading is one recognized text region within the plate crop.
type Reading struct {
	// Corners is the quadrilateral around the text in crop coordinates,
	// ordered top-left, top-right, bottom-right, bottom-left.
	Corners [4]locate.Point `json:"corners"`

	// Text is the recognized content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0). Higher values
	// indicate more certain recognition.
	Confidence float64 `json:"confidence"`
}

// ReadPlate performs OCR on a cropped plate raster and returns the
// recognized text regions in Tesseract's reading order.
//
// Parameters:
//   - plate: The cropped (typically grayscale) plate image.
//   - language: Tesseract language code (e.g., "eng"). The corresponding
//     language data must be installed on the system.
//
// Small crops are upscaled before recognition; returned corners are mapped
// back to the original crop's coordinates. Words recognized as empty or
// whitespace are filtered out.
//
// # Implementation Details
//
// Tesseract needs a file path, so the crop is written to a temporary PNG in
// the system temp directory and removed after OCR completes.
func ReadPlate(plate image.Image, language string) ([]Reading, error) {
	bounds := plate.Bounds()
	scale := 1.0
	input := plate
	if h := bounds.Dy(); h > 0 && h < minPlateHeight {
		scale = float64(minPlateHeight) / float64(h)
		input = imaging.Resize(plate, int(float64(bounds.Dx())*scale), minPlateHeight, imaging.Lanczos)
	}

	tmpFile, err := os.CreateTemp("", "plate-ocr-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmpFile, input); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to encode temp image: %w", err)
	}
	tmpFile.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	readings := make([]Reading, 0, len(boxes))
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		x1 := int(float64(box.Box.Min.X) / scale)
		y1 := int(float64(box.Box.Min.Y) / scale)
		x2 := int(float64(box.Box.Max.X) / scale)
		y2 := int(float64(box.Box.Max.Y) / scale)
		readings = append(readings, Reading{
			Corners: [4]locate.Point{
				{X: x1, Y: y1},
				{X: x2, Y: y1},
				{X: x2, Y: y2},
				{X: x1, Y: y2},
			},
			Text:       strings.TrimSpace(box.Word),
			Confidence: float64(box.Confidence) / 100.0,
		})
	}

	return readings, nil
}

// PlateText joins all readings into a single plate string, words separated
// by single spaces. An empty slice yields an empty string.
func PlateText(readings []Reading) string {
	words := make([]string, 0, len(readings))
	for _, r := range readings {
		words = append(words, r.Text)
	}
	return strings.Join(words, " ")
}

// Available reports whether a usable Tesseract installation was found, along
// with its version string when present.
func Available() (bool, string) {
	client := gosseract.NewClient()
	defer client.Close()
	v := client.Version()
	return v != "", v
}
