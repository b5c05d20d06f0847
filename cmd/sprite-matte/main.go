// Command sprite-matte batch-processes sprite images with the background
// cleanup engine. It takes a file or a directory, runs the matting pipeline
// on every supported image, and writes "<stem>_cleaned.png" files into the
// output directory. Per-file failures are reported and skipped; the run
// continues.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/sprite-matte-mcp/internal/imaging"
	"github.com/ironsheep/sprite-matte-mcp/internal/matte"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		input     = flag.String("input", "", "input image file or directory (required)")
		outputDir = flag.String("output-dir", "", "directory for cleaned images (required)")
		threshold = flag.Int("threshold", matte.DefaultConfig().OutlineThreshold, "outline brightness threshold (0-255)")
		tolerance = flag.Int("tolerance", matte.DefaultConfig().FillTolerance, "background color match tolerance (0-255)")
		dilation  = flag.Int("dilation", matte.DefaultConfig().DilationPasses, "maximum edge dilation passes (0 disables)")
		recursive = flag.Bool("recursive", false, "scan subdirectories when input is a directory")
		preview   = flag.Bool("preview", false, "highlight removed pixels red instead of clearing them")
		version   = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if *version {
		fmt.Printf("sprite-matte %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return
	}
	if *input == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := matte.DefaultConfig()
	cfg.OutlineThreshold = *threshold
	cfg.FillTolerance = *tolerance
	cfg.DilationPasses = *dilation
	cfg.PreviewMode = *preview
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ERROR: %v", err)
	}

	info, err := os.Stat(*input)
	if err != nil {
		log.Fatalf("ERROR: input path does not exist: %s", *input)
	}

	files, err := collectInputs(*input, info.IsDir(), *recursive)
	if err != nil {
		log.Fatalf("ERROR: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("ERROR: no supported image files found in: %s", *input)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("ERROR: cannot create output directory: %v", err)
	}

	processed, succeeded, failed := 0, 0, 0
	cache := imaging.NewImageCache()

	for _, path := range files {
		processed++

		outPath, err := outputPath(*input, *outputDir, path, info.IsDir() && *recursive)
		if err == nil {
			err = cleanupFile(cache, path, outPath, cfg)
		}
		if err != nil {
			failed++
			log.Printf("ERROR: failed to process %s: %v", filepath.Base(path), err)
			continue
		}
		succeeded++
	}

	fmt.Printf("Processed: %d | Succeeded: %d | Failed: %d\n", processed, succeeded, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// collectInputs resolves the input argument to a sorted list of image files.
// A file input is taken as-is; a directory is scanned for supported
// extensions, descending into subdirectories only when recursive is set.
func collectInputs(input string, isDir, recursive bool) ([]string, error) {
	if !isDir {
		return []string{input}, nil
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && imaging.SupportedExt(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && imaging.SupportedExt(e.Name()) {
				files = append(files, filepath.Join(input, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// outputPath derives the destination for one cleaned image. Recursive runs
// mirror the source tree under the output directory; flat runs drop
// everything directly into it.
func outputPath(input, outputDir, src string, mirror bool) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	name := stem + "_cleaned.png"

	if !mirror {
		return filepath.Join(outputDir, name), nil
	}

	rel, err := filepath.Rel(input, src)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(outputDir, filepath.Dir(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// cleanupFile runs the matting pipeline on one image and writes the result.
func cleanupFile(cache *imaging.ImageCache, src, dst string, cfg matte.Config) error {
	img, err := cache.Load(src)
	if err != nil {
		return err
	}
	// Batch runs never revisit a file; keep the cache from growing.
	defer cache.Evict(src)

	pm := imaging.ToPixmap(img)
	if _, err := matte.Remove(context.Background(), pm, cfg); err != nil {
		return err
	}
	return imaging.SavePNG(imaging.FromPixmap(pm), dst)
}
