package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skdltmxn/numparse-go/numparse"
)

var (
	parseBase     string
	parseUnsigned bool
	parseStart    int
	parseFormat   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Parse integer literals",
	Long: `Parse the integer literal at the start of each argument.

For each argument the value, the offset just past the literal and the
status (ok or out of range) are printed. Text after the literal is ignored.

Examples:
  numparse parse 0x1F -- -42 0rMCMXCIV
  numparse parse --base 36 zz
  numparse parse --start 3 "id=0b101"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseBase, "base", "b", "", "numeric base: 0 to detect from prefix, or 2..36")
	parseCmd.Flags().BoolVarP(&parseUnsigned, "unsigned", "u", false, "reject signs and report 64-bit unsigned values")
	parseCmd.Flags().IntVar(&parseStart, "start", 0, "byte offset to start parsing at")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (text, json)")
}

// ParseDump is the JSON form of one parsed argument.
type ParseDump struct {
	Input  string `json:"input"`
	Value  any    `json:"value"`
	End    int    `json:"end"`
	Status string `json:"status"`
}

func runParse(cmd *cobra.Command, args []string) error {
	base, err := resolveBase(parseBase)
	if err != nil {
		return err
	}
	format, err := resolveFormat(parseFormat)
	if err != nil {
		return err
	}
	signed := cfg.Signed && !parseUnsigned

	dumps := make([]ParseDump, 0, len(args))
	for _, arg := range args {
		d := parseOne(arg, base, signed)
		if d.Status != numparse.OK.String() {
			logger.Warn("literal out of range", zap.String("input", arg), zap.Int("base", base))
		}
		logger.Debug("parsed literal",
			zap.String("input", arg),
			zap.Int("base", base),
			zap.Int("end", d.End),
			zap.String("status", d.Status))
		dumps = append(dumps, d)
	}

	if format == "json" {
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		return enc.Encode(dumps)
	}

	for _, d := range dumps {
		fmt.Fprintf(output, "%-24s %-22v end=%-4d %s\n", d.Input, d.Value, d.End, d.Status)
	}
	return nil
}

func parseOne(arg string, base int, signed bool) ParseDump {
	if signed {
		r := numparse.ParseSigned(arg, parseStart, base)
		return ParseDump{Input: arg, Value: r.Value, End: r.End, Status: r.Status.String()}
	}
	r := numparse.ParseUnsigned(arg, parseStart, base)
	return ParseDump{Input: arg, Value: r.Value, End: r.End, Status: r.Status.String()}
}
