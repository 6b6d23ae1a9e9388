package pipeline

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/config"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/extract"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/imaging"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/locate"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/ocr"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/render"
)

var debugEnabled = os.Getenv("PLATE_RECOGNIZER_LOG_LEVEL") == "debug"

func debugf(format string, v ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Result carries every artifact produced for one image. Fields past Location
// may be nil or empty when a downstream stage failed recoverably (see
// Process).
type Result struct {
	// Location is the selected plate quadrilateral in image coordinates.
	Location locate.Polygon

	// Box is the tightest axis-aligned box around the filled mask.
	Box locate.Bounds

	// Mask is the binary plate mask, same dimensions as the input.
	Mask *image.Gray

	// Masked is the grayscale input with everything outside the plate
	// zeroed.
	Masked image.Image

	// Plate is the cropped plate region cut from Masked.
	Plate image.Image

	// Readings are the OCR results on the plate crop; empty when OCR is
	// disabled or failed.
	Readings []ocr.Reading

	// Text is the recognized plate string, words joined by spaces.
	Text string

	// Annotated is the source image with the plate region and text drawn
	// on it.
	Annotated *image.RGBA
}

// Pipeline runs the full recognition sequence: denoise, edge detection,
// boundary tracing, candidate selection, mask extraction, OCR, annotation.
// A Pipeline is immutable after construction and safe for concurrent use.
type Pipeline struct {
	cfg config.Config
}

// New returns a Pipeline using the given configuration.
func New(cfg config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Locate finds the plate quadrilateral in a source image. It converts to
// grayscale, denoises, detects edges, and hands the binary raster to
// LocateFromEdges.
func (p *Pipeline) Locate(img image.Image) (locate.Polygon, error) {
	gray := imaging.Grayscale(img)
	denoised := imaging.Denoise(gray, p.cfg.Denoise.Radius)
	edges := imaging.DetectEdges(denoised, p.cfg.Edge.Low, p.cfg.Edge.High)
	return p.LocateFromEdges(edges)
}

// LocateFromEdges finds the plate quadrilateral in an already-binarized edge
// raster. Callers that run their own edge detection (or synthesize edge maps)
// enter the pipeline here.
func (p *Pipeline) LocateFromEdges(edges *image.Gray) (locate.Polygon, error) {
	contours, err := locate.TraceBoundaries(edges)
	if err != nil {
		return nil, err
	}
	debugf("traced %d contours", len(contours))

	selector := &locate.Selector{
		Epsilon: p.cfg.Locate.Epsilon,
		TopK:    p.cfg.Locate.TopK,
	}
	loc, err := selector.Select(contours)
	if err != nil {
		return nil, err
	}
	debugf("selection %s: %d-vertex polygon", selector.State(), len(loc))
	return loc, nil
}

// Process runs the full pipeline on one image.
//
// Localization and extraction failures abort with an error. OCR and
// annotation failures do not: a plate that was found but cannot be read still
// yields a Result with Location, Mask and Plate populated and Text empty.
func (p *Pipeline) Process(img image.Image) (*Result, error) {
	gray := imaging.Grayscale(img)
	denoised := imaging.Denoise(gray, p.cfg.Denoise.Radius)
	edges := imaging.DetectEdges(denoised, p.cfg.Edge.Low, p.cfg.Edge.High)

	loc, err := p.LocateFromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("localization failed: %w", err)
	}

	bounds := img.Bounds()
	mask := extract.RasterizeMask(loc, bounds.Dx(), bounds.Dy())

	masked, err := extract.ApplyMask(gray, mask)
	if err != nil {
		return nil, fmt.Errorf("masking failed: %w", err)
	}

	box, err := extract.BoundingBoxOf(mask)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	plate, err := extract.Crop(masked, box)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	res := &Result{
		Location: loc,
		Box:      box,
		Mask:     mask,
		Masked:   masked,
		Plate:    plate,
	}

	if !p.cfg.OCR.Disabled {
		readings, err := ocr.ReadPlate(plate, p.cfg.OCR.Language)
		if err != nil {
			log.Printf("OCR failed, continuing without text: %v", err)
		} else {
			res.Readings = readings
			res.Text = ocr.PlateText(readings)
		}
	}

	res.Annotated = render.AnnotatePlate(img, loc, res.Text, p.cfg.Render.Color)
	return res, nil
}

// FileResult pairs one input path with its outcome in a batch run.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// ProcessFiles runs the pipeline over several image files concurrently,
// bounded by the configured worker count, and writes each file's artifacts
// into outDir (see WriteArtifacts). Results come back in input order; a
// failure on one file never stops the others.
func (p *Pipeline) ProcessFiles(paths []string, outDir string) []FileResult {
	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	results := make([]FileResult, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := p.processFile(path, outDir)
			results[i] = FileResult{Path: path, Result: res, Err: err}
		}(i, path)
	}
	wg.Wait()

	return results
}

func (p *Pipeline) processFile(path, outDir string) (*Result, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	res, err := p.Process(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if outDir != "" {
		if err := WriteArtifacts(res, path, outDir); err != nil {
			return res, err
		}
	}
	return res, nil
}

// WriteArtifacts saves a result's mask, plate crop and annotated image as
// PNGs named after the source file: <name>-mask.png, <name>-plate.png and
// <name>-annotated.png inside outDir.
func WriteArtifacts(res *Result, srcPath, outDir string) error {
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))

	outputs := []struct {
		suffix string
		img    image.Image
	}{
		{"mask", res.Mask},
		{"plate", res.Plate},
		{"annotated", res.Annotated},
	}
	for _, out := range outputs {
		if out.img == nil {
			continue
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s-%s.png", base, out.suffix))
		if err := imaging.SavePNG(path, out.img); err != nil {
			return err
		}
		debugf("wrote %s", path)
	}
	return nil
}
