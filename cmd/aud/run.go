package main

import (
	"os"

	"github.com/spf13/cobra"

	"aud/internal/diag"
	"aud/internal/diagfmt"
	"aud/internal/domain"
	"aud/internal/interp"
)

var runCmd = &cobra.Command{
	Use:   "run <file.aud>",
	Short: "Lex, parse, type-check, and execute an Aud program",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := readSource(args[0])
	if err != nil {
		return err
	}

	bag := diag.NewBag()
	prog, parsedOK := lexAndParse(cfg, r, bag)
	if !parsedOK {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}
	if !typeCheck(prog, bag) {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}

	world := domain.NewWorld(cfg.MaxFolderDepth)
	res := interp.Run(prog, interp.Options{
		Config: cfg,
		World:  world,
		Stdin:  os.Stdin,
		Stdout: cmd.OutOrStdout(),
	})
	if res.Fault != nil {
		useColor, _ := resolveColor(cmd, os.Stderr)
		faultBag := diag.NewBag()
		faultBag.Add(res.Fault.Diagnostic())
		os.Stderr.WriteString(diagfmt.FormatAll(faultBag, r, useColor))
		os.Exit(1)
	}
	return nil
}
