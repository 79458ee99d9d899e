package area

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Parallel enables concurrent decoding across worker goroutines.
	Parallel bool

	// Workers specifies the number of decoder goroutines.
	// If 0, defaults to runtime.NumCPU(). Only used when Parallel is true.
	Workers int

	// SkipErrors causes loading to continue when individual files fail.
	// Failed files are skipped and their errors collected. When false,
	// the first error stops loading and is returned immediately.
	SkipErrors bool

	// Progress is an optional callback invoked after each file is
	// processed, with (loaded, total) counts.
	Progress func(loaded, total int)

	// ErrorLog is an optional writer for detailed error reporting.
	ErrorLog io.Writer
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

// DiscoverAreas finds AREA files in a directory tree.
//
// Files are matched by the McIDAS naming convention (basename starting
// with "AREA") or by a .area extension, optionally gzip-compressed.
func DiscoverAreas(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isAreaName(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	return paths, nil
}

func isAreaName(name string) bool {
	name = strings.TrimSuffix(name, ".gz")
	return strings.HasPrefix(name, "AREA") ||
		strings.EqualFold(filepath.Ext(name), ".area")
}

// LoadAreas decodes multiple AREA files, in parallel when enabled.
//
// The returned slice preserves the input path order, minus any files that
// failed with SkipErrors set. Errors are collected per file.
//
// Example:
//
//	paths, _ := area.DiscoverAreas("/data/areas")
//	areas, errs := area.LoadAreas(paths, area.LoadOptions{
//	    Parallel:   true,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rDecoding: %d/%d", loaded, total)
//	    },
//	})
//	if len(errs) > 0 {
//	    fmt.Printf("\nSkipped %d files\n", len(errs))
//	}
func LoadAreas(paths []string, opts LoadOptions) ([]*Area, []error) {
	return loadAll(paths, opts, DecodeOptions{})
}

// loadEntries header-decodes paths into index entries.
func loadEntries(paths []string, opts LoadOptions) ([]IndexEntry, []error) {
	areas, errs := loadAll(paths, opts, DecodeOptions{SkipImage: true})

	entries := make([]IndexEntry, 0, len(areas))
	for _, a := range areas {
		entries = append(entries, IndexEntry{
			Path:           a.path,
			AreaNumber:     a.AreaNumber(),
			SensorSource:   a.SensorSource(),
			SensorName:     a.SensorName(),
			NavigationType: a.NavigationType(),
			Timestamp:      a.Timestamp(),
			GeoBounds:      a.Bounds(),
		})
	}
	return entries, errs
}

// loadAll is the shared worker-pool loader behind LoadAreas and the
// index builder.
func loadAll(paths []string, opts LoadOptions, decodeOpts DecodeOptions) ([]*Area, []error) {
	if len(paths) == 0 {
		return nil, nil
	}

	if !opts.Parallel {
		return loadSerial(paths, opts, decodeOpts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index int
		area  *Area
		err   error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				a, err := decodePath(paths[index], decodeOpts)
				results <- loadResult{index: index, area: a, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	areaMap := make(map[int]*Area)
	var errs []error
	loaded := 0

	for result := range results {
		loaded++
		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error decoding area: %v\n", result.err)
			}
			if opts.SkipErrors {
				errs = append(errs, result.err)
				continue
			}
			return nil, []error{result.err}
		}

		areaMap[result.index] = result.area
	}

	areas := make([]*Area, 0, len(areaMap))
	for i := 0; i < len(paths); i++ {
		if a, ok := areaMap[i]; ok {
			areas = append(areas, a)
		}
	}

	return areas, errs
}

// loadSerial decodes files one at a time (fallback when Parallel=false).
func loadSerial(paths []string, opts LoadOptions, decodeOpts DecodeOptions) ([]*Area, []error) {
	areas := make([]*Area, 0, len(paths))
	var errs []error

	for i, path := range paths {
		if opts.Progress != nil {
			opts.Progress(i, len(paths))
		}

		a, err := decodePath(path, decodeOpts)
		if err != nil {
			if opts.ErrorLog != nil {
				fmt.Fprintf(opts.ErrorLog, "Error decoding area: %v\n", err)
			}
			if opts.SkipErrors {
				errs = append(errs, err)
				continue
			}
			return nil, []error{err}
		}

		areas = append(areas, a)
	}

	if opts.Progress != nil {
		opts.Progress(len(paths), len(paths))
	}

	return areas, errs
}

// decodePath decodes a single file and records the path it came from.
func decodePath(path string, opts DecodeOptions) (*Area, error) {
	a, err := DecodeWithOptions(path, opts)
	if err != nil {
		return nil, err
	}
	a.path = path
	return a, nil
}
