package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/config"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/ocr"
	"github.com/vinaybembalge/License-Plate-Recognition-System/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("plate-recognizer %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	configPath := flag.String("config", "", "path to YAML config file")
	outDir := flag.String("out", ".", "directory for output PNGs")
	lang := flag.String("lang", "", "Tesseract language code (overrides config)")
	workers := flag.Int("workers", 0, "concurrent images in batch mode (overrides config)")
	noOCR := flag.Bool("no-ocr", false, "skip text recognition")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(2)
	}

	// Log to stderr; stdout carries the recognized text
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("PLATE_RECOGNIZER_LOG_LEVEL") == "debug" {
		log.Printf("plate-recognizer v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}
	if *lang != "" {
		cfg.OCR.Language = *lang
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *noOCR {
		cfg.OCR.Disabled = true
	}

	if !cfg.OCR.Disabled {
		if ok, version := ocr.Available(); ok {
			if os.Getenv("PLATE_RECOGNIZER_LOG_LEVEL") == "debug" {
				log.Printf("Tesseract %s found", version)
			}
		} else {
			log.Printf("Tesseract not found, disabling OCR")
			cfg.OCR.Disabled = true
		}
	}

	p := pipeline.New(cfg)
	results := p.ProcessFiles(flag.Args(), *outDir)

	failed := 0
	for _, fr := range results {
		if fr.Err != nil {
			log.Printf("%s: %v", fr.Path, fr.Err)
			failed++
			continue
		}
		if fr.Result.Text != "" {
			fmt.Printf("%s: %s\n", fr.Path, fr.Result.Text)
		} else {
			fmt.Printf("%s: plate located at (%d,%d)-(%d,%d), no text read\n",
				fr.Path, fr.Result.Box.X1, fr.Result.Box.Y1, fr.Result.Box.X2, fr.Result.Box.Y2)
		}
	}

	if failed == len(results) {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("plate-recognizer - locate and read license plates in images")
	fmt.Println()
	fmt.Println("Usage: plate-recognizer [options] image [image...]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config path     Path to YAML config file")
	fmt.Println("  -out dir         Directory for output PNGs (default \".\")")
	fmt.Println("  -lang code       Tesseract language code (default \"eng\")")
	fmt.Println("  -workers n       Concurrent images in batch mode")
	fmt.Println("  -no-ocr          Skip text recognition")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PLATE_RECOGNIZER_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("For each input, <name>-mask.png, <name>-plate.png and")
	fmt.Println("<name>-annotated.png are written to the output directory.")
}
