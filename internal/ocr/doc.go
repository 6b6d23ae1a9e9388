// Package ocr converts the cropped plate raster to text using Tesseract
// (via gosseract/v2).
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// The default language is English ("eng"); any installed Tesseract language
// code works.
//
// # Contract
//
// ReadPlate returns an ordered list of readings, each a
// (quadrilateral-in-crop-coordinates, text, confidence in [0,1]) tuple. The
// pipeline treats OCR failure as recoverable: localization results remain
// valid even when no text can be read.
package ocr
