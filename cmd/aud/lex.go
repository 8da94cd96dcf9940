package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aud/internal/diag"
	"aud/internal/lexcache"
	"aud/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file.aud>",
	Short: "Tokenize an Aud source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().String("cache", "", "write the token stream to this msgpack cache file")
}

func runLex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	r, err := readSource(args[0])
	if err != nil {
		return err
	}
	bag := diag.NewBag()
	lx := lexer.New(r, cfg, bag)
	toks := drainTokens(lx)

	if !bag.Empty() {
		printDiagnostics(cmd, r, bag)
		os.Exit(1)
	}

	cachePath, _ := cmd.Flags().GetString("cache")
	if cachePath != "" {
		payload := lexcache.FromTokens(r.Normalized(), toks)
		if err := lexcache.Save(cachePath, payload); err != nil {
			return fmt.Errorf("write cache: %w", err)
		}
	}

	for _, t := range toks {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %q\n", t.Kind, t.Text)
	}
	return nil
}
