package imaging

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.Set(3, 2, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	b := loaded.Bounds()
	if b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("Expected 8x6 image, got %dx%d", b.Dx(), b.Dy())
	}
	r, g, bl, _ := loaded.At(3, 2).RGBA()
	if uint8(r>>8) != 200 || uint8(g>>8) != 100 || uint8(bl>>8) != 50 {
		t.Errorf("Pixel (3,2) = (%d,%d,%d), want (200,100,50)", r>>8, g>>8, bl>>8)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not a png at all"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected decode error for non-image file, got nil")
	}
}
