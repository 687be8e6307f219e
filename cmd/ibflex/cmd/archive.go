package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/ibflex/archive"
	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect archived statements",
	Long: `Query the local statement archive.

Subcommands:
  list - List archived statements
  cat  - Write an archived statement's raw XML to stdout

Examples:
  ibflex archive list
  ibflex archive cat 01J8ZQ4X1QJ8ZQ4X1QJ8ZQ4X1Q > statement.xml`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived statements",
	Args:  cobra.NoArgs,
	RunE:  runArchiveList,
}

var archiveCatCmd = &cobra.Command{
	Use:   "cat <statement-id>",
	Short: "Write an archived statement to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchiveCat,
}

var archiveDBPath string

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveCatCmd)

	archiveCmd.PersistentFlags().StringVarP(&archiveDBPath, "db", "d", "", "path to archive DB (default from config)")
}

func openArchive() (*archive.Archive, error) {
	path := archiveDBPath
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Archive.DBPath
	}
	a, err := archive.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	return a, nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	a, err := openArchive()
	if err != nil {
		return err
	}
	defer a.Close()

	entries, err := a.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list statements: %w", err)
	}

	for _, e := range entries {
		fmt.Printf("%s  %-12s %-12s %s to %s  %s\n",
			e.ID, e.QueryID, e.AccountID, e.FromDate, e.ToDate,
			e.Downloaded.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runArchiveCat(cmd *cobra.Command, args []string) error {
	a, err := openArchive()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := a.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get statement: %w", err)
	}

	_, err = os.Stdout.Write(e.Raw)
	return err
}
