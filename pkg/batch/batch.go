// Package batch processes sets of SEM images: it expands directories into
// candidate image files, parses each image independently so that one bad file
// never aborts the rest, and aggregates pixel-size statistics across the set.
package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"semio/pkg/extract"
	"semio/pkg/header"
	"semio/pkg/report"
)

// Options controls batch processing.
type Options struct {
	// Grouped selects the curated grouped view for console output.
	Grouped bool

	// Quiet suppresses per-image console output.
	Quiet bool

	// Dump writes a structured document per processed image.
	Dump bool

	// Format is the dump encoding.
	Format report.Format

	// DumpDir is the directory dump files are written to; empty writes
	// them next to each source image.
	DumpDir string

	// Stats appends a pixel-size summary across the processed images.
	Stats bool

	// Out receives console output; defaults to os.Stdout.
	Out io.Writer
}

// Result records the outcome for one image.
type Result struct {
	// Path is the source image path.
	Path string

	// Params is the parsed parameter model, nil when Err is set.
	Params *header.Params

	// PixelSize is the resolved pixel size; valid only when PixelSizeOK.
	PixelSize   header.PixelSize
	PixelSizeOK bool

	// Err is the per-image failure, nil on success.
	Err error
}

// Run processes the given file and directory paths. It returns the per-image
// results in processing order. A non-existent input path or a directory
// containing no .tif images is a hard error; failures on individual images
// are recorded in their Result instead.
func Run(paths []string, opts Options) ([]Result, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	files, err := expand(paths)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for _, file := range files {
		results = append(results, processOne(file, opts))
	}

	if opts.Stats {
		printSummary(opts.Out, Summarize(results))
	}
	return results, nil
}

// expand resolves the input paths to a flat list of image files. Directories
// contribute their .tif/.tiff entries in sorted order and must contain at
// least one.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("input path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".tif", ".tiff":
				found = append(found, filepath.Join(path, entry.Name()))
			}
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("directory %s contains no .tif images", path)
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// processOne parses a single image and applies the output options. All
// failures are captured in the Result.
func processOne(path string, opts Options) Result {
	res := Result{Path: path}

	res.Params, res.Err = extract.Extract(path)
	if res.Err != nil {
		fmt.Fprintf(opts.Out, "%s: %v\n", path, res.Err)
		return res
	}

	if ps, err := header.ResolvePixelSize(res.Params); err == nil {
		res.PixelSize = ps
		res.PixelSizeOK = true
	}

	if !opts.Quiet {
		fmt.Fprintf(opts.Out, "\nParameters extracted from the SEM image: %s\n\n", path)
		if err := report.Render(opts.Out, res.Params, opts.Grouped); err != nil {
			res.Err = err
			return res
		}
	}

	if opts.Dump {
		res.Err = report.Dump(dumpPath(path, opts), res.Params, report.DumpOptions{
			Format:    opts.Format,
			Grouped:   opts.Grouped,
			ImagePath: path,
		})
	}
	return res
}

// dumpPath places the dump file next to the image, or under DumpDir when
// set, swapping the image extension for the dump format's.
func dumpPath(imagePath string, opts Options) string {
	ext := ".json"
	if opts.Format == report.YAML {
		ext = ".yaml"
	}
	base := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath)) + ext
	if opts.DumpDir != "" {
		return filepath.Join(opts.DumpDir, base)
	}
	return filepath.Join(filepath.Dir(imagePath), base)
}

// Failed counts the per-image failures in a result set.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
