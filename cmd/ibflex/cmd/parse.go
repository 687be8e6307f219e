package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/ibflex/flex"
	"github.com/rustyeddy/ibflex/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <statement.xml>...",
	Short: "Parse statement files and print a summary",
	Long: `Parse downloaded Flex statements and print a per-statement summary
of what they contain. Diagnostics (unknown attributes, unknown elements,
unrecognized codes) go to stderr.

Examples:
  ibflex parse statement.xml
  ibflex parse --strict --date-mode us 2025.xml 2026.xml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseDateMode  string
	parseSeparator string
	parseStrict    bool
	parsePermiss   bool
	parseTrim      bool
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseDateMode, "date-mode", "", "slashed date interpretation: auto, iso, us or european")
	parseCmd.Flags().StringVar(&parseSeparator, "separator", "", "date/time separator (default auto-detect)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "treat diagnostics as fatal errors")
	parseCmd.Flags().BoolVar(&parsePermiss, "permissive", false, "retain undeclared attributes on records")
	parseCmd.Flags().BoolVar(&parseTrim, "trim-space", false, "trim whitespace padding from attribute values")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parseDateMode != "" {
		cfg.Parse.DateMode = parseDateMode
	}
	if parseSeparator != "" {
		cfg.Parse.Separator = parseSeparator
	}
	if parseStrict {
		cfg.Parse.Strict = true
	}
	if parsePermiss {
		cfg.Parse.Permissive = true
	}
	if parseTrim {
		cfg.Parse.TrimSpace = true
	}
	opts, err := parseOptions(cfg.Parse)
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := parseFile(path, opts); err != nil {
			return err
		}
	}
	return nil
}

func parseFile(path string, opts parser.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}

	resp, diags, err := parser.ParseBytes(data, opts)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, d)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	fmt.Printf("%s: query %q (%s), %d statement(s)\n", path, resp.QueryName, resp.Type, len(resp.FlexStatements))
	for _, st := range resp.FlexStatements {
		printStatement(st)
	}
	return nil
}

func printStatement(st flex.FlexStatement) {
	fmt.Printf("\naccount %s  %s to %s  (%s)\n", st.AccountID, st.FromDate, st.ToDate, st.Period)
	sections := []struct {
		name  string
		count int
	}{
		{"trades", len(st.Trades)},
		{"orders", len(st.Orders)},
		{"lots", len(st.Lots)},
		{"symbol summaries", len(st.SymbolSummaries)},
		{"trade confirms", len(st.TradeConfirms)},
		{"trade transfers", len(st.TradeTransfers)},
		{"unsettled transfers", len(st.UnsettledTransfers)},
		{"unbundled commission details", len(st.UnbundledCommissionDetails)},
		{"cash transactions", len(st.CashTransactions)},
		{"open positions", len(st.OpenPositions)},
		{"fx lots", len(st.FxPositions)},
		{"prior period positions", len(st.PriorPeriodPositions)},
		{"corporate actions", len(st.CorporateActions)},
		{"transaction taxes", len(st.TransactionTaxes) + len(st.TransactionTaxDetails)},
		{"client fees", len(st.ClientFees) + len(st.ClientFeesDetails)},
		{"sales taxes", len(st.SalesTaxes)},
		{"debit card activity", len(st.DebitCardActivities)},
		{"transfers", len(st.Transfers)},
		{"option exercises/assignments", len(st.OptionEAE)},
		{"interest accruals", len(st.InterestAccruals)},
		{"tier interest details", len(st.TierInterestDetails)},
		{"hard to borrow details", len(st.HardToBorrowDetails)},
		{"stock loan activity", len(st.SLBActivities)},
		{"stock loan fees", len(st.SLBFees)},
		{"dividend accrual changes", len(st.ChangeInDividendAccruals)},
		{"open dividend accruals", len(st.OpenDividendAccruals)},
		{"securities", len(st.SecuritiesInfo)},
		{"conversion rates", len(st.ConversionRates)},
		{"cash report lines", len(st.CashReport)},
		{"statement of funds lines", len(st.StmtFunds)},
		{"position value changes", len(st.ChangeInPositionValues)},
		{"net stock positions", len(st.NetStockPositionSummary)},
		{"equity summary lines", len(st.EquitySummaryInBase)},
		{"MTM performance lines", len(st.MTMPerformanceSummaryInBase)},
		{"MTD/YTD performance lines", len(st.MTDYTDPerformanceSummary)},
		{"FIFO performance lines", len(st.FIFOPerformanceSummaryInBase)},
	}
	for _, s := range sections {
		if s.count > 0 {
			fmt.Printf("  %-30s %d\n", s.name, s.count)
		}
	}
}
