// Command aud is the command-line entry point for the Aud language
// toolchain: lexing, parsing, type-checking, and running Aud source files.
// It mirrors the teacher's cmd/surge command tree shape (a cobra root with
// one subcommand per pipeline stage plus persistent --color/--quiet flags).
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aud/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "aud",
	Short: "Aud language interpreter and toolchain",
	Long:  "Aud is a small statically-typed language with first-class Folder/File/Audio entities.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fmtDiagCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted for compatibility; no subcommand reads it")
	rootCmd.PersistentFlags().String("config", "", "path to a JSON config file overriding MAX_* limits")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to an interactive terminal,
// used to resolve --color=auto.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
