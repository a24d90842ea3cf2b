package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/skdltmxn/numparse-go/numparse"
)

var (
	scanBase    string
	scanWorkers int
	scanFormat  string
)

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Extract integer literals from files",
	Long: `Extract every integer literal from the given files ("-" reads stdin).

Literals start at word boundaries; a sign belongs to a literal only when it
starts a word. Literals that overflow are reported as out of range and
skipped as a whole. Files are read concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanBase, "base", "b", "", "numeric base: 0 to detect from prefix, or 2..36")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "number of files scanned concurrently")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "", "output format (text, json)")
}

// FileDump holds the literals found in one file.
type FileDump struct {
	File   string      `json:"file"`
	Tokens []TokenDump `json:"tokens"`
}

// TokenDump is the JSON form of one literal.
type TokenDump struct {
	Offset int    `json:"offset"`
	Text   string `json:"text"`
	Value  int64  `json:"value"`
	Status string `json:"status"`
}

func runScan(cmd *cobra.Command, args []string) error {
	base, err := resolveBase(scanBase)
	if err != nil {
		return err
	}
	format, err := resolveFormat(scanFormat)
	if err != nil {
		return err
	}
	workers := cfg.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dumps, err := scanFiles(ctx, args, base, workers)

	if format == "json" {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(dumps); encErr != nil {
			return multierr.Append(err, encErr)
		}
		return err
	}

	for _, d := range dumps {
		for _, t := range d.Tokens {
			fmt.Fprintf(output, "%s:%d\t%s\t%d\t%s\n", d.File, t.Offset, t.Text, t.Value, t.Status)
		}
	}
	return err
}

// scanFiles tokenizes every path with at most workers files in flight.
// Results keep the order of paths; files that fail are left out and their
// errors are combined. A cancelled ctx stops the scan with no results.
func scanFiles(ctx context.Context, paths []string, base, workers int) ([]FileDump, error) {
	results := make([]*FileDump, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := readInput(path)
			if err != nil {
				errs[i] = fmt.Errorf("failed to read %s: %w", path, err)
				logger.Warn("scan failed", zap.String("file", path), zap.Error(err))
				return nil
			}

			d := &FileDump{File: path, Tokens: []TokenDump{}}
			for tok := range numparse.Tokens(string(data), base) {
				d.Tokens = append(d.Tokens, TokenDump{
					Offset: tok.Offset,
					Text:   tok.Text,
					Value:  tok.Value,
					Status: tok.Status.String(),
				})
			}
			logger.Debug("scanned file", zap.String("file", path), zap.Int("tokens", len(d.Tokens)))
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dumps := make([]FileDump, 0, len(paths))
	for _, d := range results {
		if d != nil {
			dumps = append(dumps, *d)
		}
	}
	return dumps, multierr.Combine(errs...)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
