package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the ibflex CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ibflex version %s\n", version)
		fmt.Println("Interactive Brokers Flex statement tools")
		fmt.Println("https://github.com/rustyeddy/ibflex")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
