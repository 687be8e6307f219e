package cmd

import (
	"fmt"

	"github.com/rustyeddy/ibflex/config"
	"github.com/rustyeddy/ibflex/parser"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ibflex",
	Short: "Download, parse and archive Interactive Brokers Flex statements",
	Long: `ibflex works with Flex queries from Interactive Brokers.

It provides tools for:
  - Downloading statements from the Flex Web Service
  - Parsing statement XML into typed records
  - Archiving raw statements in a local SQLite database
  - Inspecting archived statements

Complete documentation is available at https://github.com/rustyeddy/ibflex`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
}

// loadConfig returns the file-based configuration, or the defaults when no
// config file was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

func parseOptions(pc config.ParseConfig) (parser.Options, error) {
	opts := parser.Options{
		Separator:  pc.Separator,
		Strict:     pc.Strict,
		Permissive: pc.Permissive,
		TrimSpace:  pc.TrimSpace,
	}
	switch pc.DateMode {
	case "", "auto":
		opts.DateMode = parser.DateModeAuto
	case "iso":
		opts.DateMode = parser.DateModeISO
	case "us":
		opts.DateMode = parser.DateModeUS
	case "european":
		opts.DateMode = parser.DateModeEuropean
	default:
		return parser.Options{}, fmt.Errorf("unknown date mode %q", pc.DateMode)
	}
	return opts, nil
}
