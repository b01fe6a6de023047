package driver

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"adacase/internal/casing"
	"adacase/internal/diag"
	"adacase/internal/source"
)

// DefaultOutDirName is the output directory created next to the sources
// when no explicit output directory is configured.
const DefaultOutDirName = "_normalized"

// DirOptions configures a batch run over a directory.
type DirOptions struct {
	OutDir         string   // defaults to <dir>/_normalized
	Recursive      bool     // descend into subdirectories
	Extensions     []string // defaults to [".ada"]
	Jobs           int      // 0 means GOMAXPROCS
	MaxDiagnostics int
	ExtraBuiltins  []string     // extra type names treated as built-in
	Cache          *DiskCache   // nil disables the result cache
	Progress       ProgressSink // nil disables progress events
}

// NormalizeDir normalizes every matching file under dir in parallel and
// writes the results into the output directory. Files are fully independent
// units of work: no symbol table crosses files, so workers need no
// coordination beyond the preloaded FileSet. A single file's failure is
// recorded in its bag and never stops the batch.
func NormalizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []NormalizeResult, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".ada"}
	}
	files, err := ListSourceFiles(dir, opts.Recursive, exts)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Join(dir, DefaultOutDirName)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fileSet, nil, err
	}

	progress := opts.Progress
	if progress == nil {
		progress = NopSink{}
	}

	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}

	rules := casing.NewRules(opts.ExtraBuiltins)

	// Preload sequentially: FileSet is not safe for concurrent mutation.
	// Workers only read from it afterwards.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		progress.OnEvent(Event{Path: path, Stage: StageQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Results are written by index; no mutex needed.
	results := make([]NormalizeResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = NormalizeResult{Path: path, Bag: bag}
				progress.OnEvent(Event{Path: path, Stage: StageFailed, Err: loadErr.Error()})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			result := NormalizeResult{Path: path, FileID: fileID, Bag: bag}

			if cached, ok := cacheLookup(opts.Cache, file, bag); ok {
				result.Output = cached
				result.CacheHit = true
				result.Changed = !bytes.Equal(file.Content, cached)
				progress.OnEvent(Event{Path: path, Stage: StageCached})
			} else {
				out, unit := normalizeStages(file, bag, rules, pinnedPathSink{sink: progress, path: path})
				result.Output = out
				result.Unit = unit
				result.Changed = !bytes.Equal(file.Content, out)
				cacheStore(opts.Cache, file, out, bag)
			}

			progress.OnEvent(Event{Path: path, Stage: StageWrite})
			outPath := filepath.Join(outDir, filepath.Base(path))
			if err := os.WriteFile(outPath, result.Output, 0o644); err != nil {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOWriteFileError,
					Message:  "failed to write output: " + err.Error(),
				})
				results[i] = result
				progress.OnEvent(Event{Path: path, Stage: StageFailed, Err: err.Error()})
				return nil
			}

			results[i] = result
			progress.OnEvent(Event{Path: path, Stage: StageDone})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

// ListSourceFiles returns the sorted list of matching files. The output
// directory is never descended into, so a previous run's results cannot
// feed back as inputs.
func ListSourceFiles(dir string, recursive bool, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{".ada"}
	}
	match := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				return true
			}
		}
		return false
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == DefaultOutDirName {
					return filepath.SkipDir
				}
				return nil
			}
			if match(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if match(path) {
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
