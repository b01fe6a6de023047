package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"adacase/internal/diag"
	"adacase/internal/diagfmt"
	"adacase/internal/driver"
	"adacase/internal/source"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] [dir]",
	Short: "Normalize identifier casing in Ada sources",
	Long: `Normalize rewrites every Ada source file in a directory so that types,
constants, and globals are uppercase while parameters and locals are
lowercase. Results go to a sibling output directory; inputs are never
modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().String("out-dir", "", "output directory (default <dir>/_normalized)")
	normalizeCmd.Flags().Bool("recursive", false, "descend into subdirectories")
	normalizeCmd.Flags().Int("jobs", 0, "parallel workers (default GOMAXPROCS)")
	normalizeCmd.Flags().StringSlice("ext", nil, "source extensions to match (default .ada)")
	normalizeCmd.Flags().Bool("cache", false, "reuse results from the disk cache")
	normalizeCmd.Flags().Bool("ui", false, "show interactive progress")
	normalizeCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	opts, err := buildDirOptions(cmd, dir)
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	opts.MaxDiagnostics = maxDiagnostics

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	withUI, _ := cmd.Flags().GetBool("ui")

	var fileSet *source.FileSet
	var results []driver.NormalizeResult
	if withUI && isTerminal(os.Stdout) {
		fileSet, results, err = runNormalizeWithUI(cmd.Context(), "normalizing "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.NormalizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	if err := printDiagnostics(cmd, fileSet, results, format); err != nil {
		return err
	}
	if format == "pretty" {
		printSummary(cmd, results)
	}

	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			return fmt.Errorf("normalization finished with errors")
		}
	}
	return nil
}

func buildDirOptions(cmd *cobra.Command, dir string) (driver.DirOptions, error) {
	var opts driver.DirOptions

	manifest, found, err := loadProjectManifest(dir)
	if err != nil {
		return opts, err
	}
	if found {
		opts.OutDir = manifest.Config.Output.Dir
		opts.Recursive = manifest.Config.Input.Recursive
		opts.Extensions = manifest.Config.Input.Extensions
		opts.ExtraBuiltins = manifest.Config.Casing.ExtraBuiltinTypes
	}

	if cmd.Flags().Changed("out-dir") {
		opts.OutDir, _ = cmd.Flags().GetString("out-dir")
	}
	if cmd.Flags().Changed("recursive") {
		opts.Recursive, _ = cmd.Flags().GetBool("recursive")
	}
	if cmd.Flags().Changed("ext") {
		opts.Extensions, _ = cmd.Flags().GetStringSlice("ext")
	}
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")

	if withCache, _ := cmd.Flags().GetBool("cache"); withCache {
		cache, err := driver.OpenDiskCache("adacase")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	return opts, nil
}

func printDiagnostics(cmd *cobra.Command, fileSet *source.FileSet, results []driver.NormalizeResult, format string) error {
	merged := diag.NewBag(4096)
	for _, res := range results {
		if res.Bag != nil {
			merged.Merge(res.Bag)
		}
	}
	merged.Sort()
	merged.Dedup()

	// JSON mode always emits a document, empty batches included, so
	// consumers never have to special-case "no output".
	if format == "json" {
		return diagfmt.JSON(cmd.OutOrStdout(), merged, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	}

	if merged.Len() == 0 {
		return nil
	}
	diagfmt.Pretty(os.Stderr, merged, fileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   1,
		ShowNotes: true,
	})
	return nil
}

func printSummary(cmd *cobra.Command, results []driver.NormalizeResult) {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet {
		return
	}

	var changed, cached, failed int
	for _, res := range results {
		if res.Bag != nil && res.Bag.HasErrors() {
			failed++
			continue
		}
		if res.CacheHit {
			cached++
		}
		if res.Changed {
			changed++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d changed, %d cached, %d failed\n",
		len(results), changed, cached, failed)
}
