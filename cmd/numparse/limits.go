package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/numparse-go/numparse"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show per-base overflow thresholds",
	Long: `Show, for every base from 2 to 36, how many digits can be accumulated
without an overflow check and the largest value that can still be
multiplied by the base.`,
	Args: cobra.NoArgs,
	RunE: runLimits,
}

func runLimits(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(output, "%-5s %-7s %s\n", "BASE", "DIGITS", "MAX BEFORE MULTIPLY")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 50))

	for base := numparse.MinBase; base <= numparse.MaxBase; base++ {
		digits, maxMul, _ := numparse.Limits(base)
		fmt.Fprintf(output, "%-5d %-7d 0x%016X\n", base, digits, maxMul)
	}
	return nil
}
