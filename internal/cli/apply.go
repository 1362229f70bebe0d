package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textcanon/pkg/field"
	"github.com/dmitrymomot/textcanon/pkg/logger"
)

var applyJSON bool

var applyCmd = &cobra.Command{
	Use:   "apply <cleaner>[,<cleaner>...] [text...]",
	Short: "Apply cleaners to text",
	Long: `Apply a comma-separated chain of cleaners to each text argument,
or to every line of standard input when no text is given.

A value the chain cannot clean is printed unchanged and a warning is logged.

Examples:
  textcanon apply compact,slugify "<p>Hello</p> World!"
  cat prices.txt | textcanon apply price`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "print each result as a JSON value")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	chain, err := registry.ParseChain(args[0])
	if err != nil {
		return err
	}

	emit := func(input string) error {
		out, err := chain(field.Text(input))
		if err != nil {
			appLogger.WarnContext(cmd.Context(), "cleaner failed, input kept",
				logger.Value(input),
				logger.Error(err),
			)
			out = field.Text(input)
		}

		if applyJSON {
			data, err := out.MarshalJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.String())
		return nil
	}

	if len(args) > 1 {
		for _, input := range args[1:] {
			if err := emit(input); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
