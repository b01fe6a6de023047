package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"adacase/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "adacase",
	Short: "Ada identifier casing normalizer",
	Long:  `adacase rewrites Ada sources so identifier casing reflects each name's role`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
