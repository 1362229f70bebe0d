package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanersCmd = &cobra.Command{
	Use:   "cleaners",
	Short: "List available cleaners",
	Long: `List the cleaner names accepted by "apply", "csv --clean",
"csv --field" and profile files.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range registry.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanersCmd)
}
