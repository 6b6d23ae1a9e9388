package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createStepImage creates an image whose left half is dark and right half is
// bright, giving one strong vertical edge down the middle
func createStepImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{A: 255}
			if x >= width/2 {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDetectEdges_VerticalStep(t *testing.T) {
	img := createStepImage(60, 60)

	edges := DetectEdges(img, 30, 200)

	b := edges.Bounds()
	if b.Dx() != 60 || b.Dy() != 60 {
		t.Fatalf("Expected 60x60 output, got %dx%d", b.Dx(), b.Dy())
	}

	// The step edge must be detected somewhere near the middle columns.
	found := false
	for y := 10; y < 50 && !found; y++ {
		for x := 25; x <= 35; x++ {
			if edges.GrayAt(x, y).Y == 255 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("Vertical step edge not detected in middle columns")
	}
}

func TestDetectEdges_UniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	edges := DetectEdges(img, 30, 200)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if edges.GrayAt(x, y).Y != 0 {
				t.Fatalf("Uniform image produced edge pixel at (%d,%d)", x, y)
			}
		}
	}
}

func TestDetectEdges_BinaryOutput(t *testing.T) {
	img := createStepImage(60, 60)

	edges := DetectEdges(img, 30, 200)

	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			v := edges.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("Non-binary pixel value %d at (%d,%d)", v, x, y)
			}
		}
	}
}
