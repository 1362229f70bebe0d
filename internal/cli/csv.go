package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textcanon/pkg/csvjson"
	"github.com/dmitrymomot/textcanon/pkg/logger"
	"github.com/dmitrymomot/textcanon/pkg/rowclean"
)

var (
	csvProfile     string
	csvClean       string
	csvFields      []string
	csvRawFirstRow bool
	csvComma       string
	csvStrict      bool
	csvMemo        int
)

var csvCmd = &cobra.Command{
	Use:   "csv [file|-]",
	Short: "Convert a CSV file to cleaned JSON lines",
	Long: `Read a delimited file with a header line and print one JSON object
per record, keyed by column name, to standard output.

Cleaners come from a YAML profile (--profile), a chain applied to every
column (--clean) and per-column chains (--field column=chain). Flags are
applied on top of the profile. A failing cleaner keeps the prior value.

Examples:
  textcanon csv --clean trim --field price=price --field zip=zipcode products.csv
  textcanon csv --profile products.yaml - < products.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCSV,
}

func init() {
	csvCmd.Flags().StringVarP(&csvProfile, "profile", "p", "", "YAML cleaning profile")
	csvCmd.Flags().StringVar(&csvClean, "clean", "", "cleaner chain applied to every column")
	csvCmd.Flags().StringArrayVarP(&csvFields, "field", "f", nil, "per-column chain as column=cleaner[,cleaner...] (repeatable)")
	csvCmd.Flags().BoolVar(&csvRawFirstRow, "raw-first-row", false, "emit the first data row without cleaning")
	csvCmd.Flags().StringVar(&csvComma, "comma", ",", "field delimiter")
	csvCmd.Flags().BoolVar(&csvStrict, "strict", false, "fail on malformed records instead of skipping them")
	csvCmd.Flags().IntVar(&csvMemo, "memo", 0, "cache up to N results per cleaner chain (0 disables)")
	rootCmd.AddCommand(csvCmd)
}

func runCSV(cmd *cobra.Command, args []string) error {
	profile, err := csvProfileFromFlags()
	if err != nil {
		return err
	}

	comma, size := utf8.DecodeRuneInString(csvComma)
	if size == 0 || size != len(csvComma) || comma == utf8.RuneError {
		return fmt.Errorf("%w: %q", ErrInvalidComma, csvComma)
	}

	rf, err := profile.Build(registry, rowclean.WithLogger(appLogger))
	if err != nil {
		return err
	}

	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	opts := []csvjson.Option{
		csvjson.WithComma(comma),
		csvjson.WithLogger(appLogger),
	}
	if rf.HasCleaners() {
		opts = append(opts, csvjson.WithReformatter(rf))
	}
	if csvRawFirstRow || profile.RawFirstRow {
		opts = append(opts, csvjson.WithRawFirstRow())
	}
	if csvStrict {
		opts = append(opts, csvjson.WithStrict())
	}

	n, err := csvjson.Convert(cmd.Context(), in, cmd.OutOrStdout(), opts...)
	if err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}

	appLogger.InfoContext(cmd.Context(), "csv converted",
		logger.Component("cli"),
		slog.String("input", name),
		slog.Int("rows", n),
	)
	return nil
}

func csvProfileFromFlags() (*rowclean.Profile, error) {
	profile := &rowclean.Profile{}
	if csvProfile != "" {
		p, err := rowclean.LoadProfile(csvProfile)
		if err != nil {
			return nil, err
		}
		profile = p
	}

	if csvMemo > 0 {
		profile.Memo = csvMemo
	}

	if csvClean != "" {
		profile.Global = append(profile.Global, strings.Split(csvClean, ",")...)
	}

	for _, spec := range csvFields {
		column, chain, ok := strings.Cut(spec, "=")
		column = strings.TrimSpace(column)
		if !ok || column == "" || strings.TrimSpace(chain) == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldFlag, spec)
		}
		if profile.Fields == nil {
			profile.Fields = make(map[string][]string)
		}
		profile.Fields[column] = strings.Split(chain, ",")
	}

	return profile, nil
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, args[0], nil
}
