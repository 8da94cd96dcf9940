package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aud/internal/config"
	"aud/internal/diag"
	"aud/internal/diagfmt"
	"aud/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.aud>...",
	Short: "Type-check one or more Aud source files",
	Long: `check parses and type-checks each file independently, running the
type-checking pool concurrently across files (never inside a single Aud
program, which stays single-threaded per the language's own semantics).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

type checkOutcome struct {
	path   string
	reader *source.Reader
	bag    *diag.Bag
	ok     bool
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	outcomes := make([]checkOutcome, len(args))
	var g errgroup.Group
	g.SetLimit(8)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			outcomes[i] = checkOneFile(cfg, path)
			return nil
		})
	}
	_ = g.Wait()

	anyFailed := false
	for _, oc := range outcomes {
		if oc.ok {
			continue
		}
		anyFailed = true
		useColor, _ := resolveColor(cmd, os.Stderr)
		fmt.Fprintf(os.Stderr, "%s:\n", oc.path)
		fmt.Fprint(os.Stderr, diagfmt.FormatAll(oc.bag, oc.reader, useColor))
	}
	if anyFailed {
		os.Exit(1)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) type-check cleanly\n", len(args))
	return nil
}

// checkOneFile runs the full lex/parse/type-check pipeline over a single
// file's contents. It never touches shared state across files, which is
// what makes running many of these concurrently in runCheck safe.
func checkOneFile(cfg config.Config, path string) checkOutcome {
	r, err := readSource(path)
	if err != nil {
		bag := diag.NewBag()
		bag.Errorf(diag.Unknown, source.Span{}, "%v", err)
		return checkOutcome{path: path, reader: source.New(""), bag: bag, ok: false}
	}
	bag := diag.NewBag()
	prog, parsedOK := lexAndParse(cfg, r, bag)
	if !parsedOK {
		return checkOutcome{path: path, reader: r, bag: bag, ok: false}
	}
	ok := typeCheck(prog, bag)
	return checkOutcome{path: path, reader: r, bag: bag, ok: ok}
}
