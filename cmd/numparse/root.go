package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skdltmxn/numparse-go/internal/config"
	"github.com/skdltmxn/numparse-go/numparse"
)

var (
	outputFile string
	configFile string
	verbose    bool

	output io.Writer = os.Stdout
	logger           = zap.NewNop()
	cfg              = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "numparse",
	Short: "Integer literal parser",
	Long: `numparse converts integer literals in bases 2 through 36.

With base 0 the base is detected from the prefix: 0x (hex), 0o (octal),
0b (binary), 0r (Roman numerals) or decimal when there is no prefix.
Values that do not fit in 64 bits are reported as out of range.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		c, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
		logger.Debug("config loaded",
			zap.String("path", configFile),
			zap.Int("base", cfg.Base),
			zap.String("format", cfg.Format))

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
		} else {
			output = os.Stdout
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if f, ok := output.(*os.File); ok && f != os.Stdout {
			f.Close()
		}
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML file with default base, signed, format and workers")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(limitsCmd)
}

// resolveBase returns the base given by flag, or the configured default when
// the flag is empty. The flag value is itself parsed with prefix detection,
// so "16" and "0x10" are equivalent.
func resolveBase(flag string) (int, error) {
	if flag == "" {
		return cfg.Base, nil
	}
	v, err := numparse.ParseInt(flag, numparse.AutoBase)
	if err != nil || !numparse.ValidBase(int(v)) {
		return 0, fmt.Errorf("invalid base %q (valid: 0 or 2..36)", flag)
	}
	return int(v), nil
}

func resolveFormat(flag string) (string, error) {
	format := cfg.Format
	if flag != "" {
		format = flag
	}
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
