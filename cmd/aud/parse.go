package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aud/internal/diag"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.aud>",
	Short: "Parse an Aud source file and report syntax errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := readSource(args[0])
	if err != nil {
		return err
	}
	bag := diag.NewBag()
	prog, ok := lexAndParse(cfg, r, bag)
	if !ok {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "parsed ok: %d function(s), %d top-level statement(s)\n",
		len(prog.Funcs), len(prog.Stmts))
	return nil
}
