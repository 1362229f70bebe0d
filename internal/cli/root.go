package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textcanon/pkg/config"
	"github.com/dmitrymomot/textcanon/pkg/csvjson"
	"github.com/dmitrymomot/textcanon/pkg/logger"
	"github.com/dmitrymomot/textcanon/pkg/rowclean"
)

// version is set at build time via -ldflags.
var version = "dev"

// Config is read from the environment (and an optional .env file).
type Config struct {
	Env       string `env:"TEXTCANON_ENV" envDefault:"production"`
	Service   string `env:"TEXTCANON_SERVICE" envDefault:"textcanon"`
	LogLevel  string `env:"TEXTCANON_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"TEXTCANON_LOG_FORMAT"`
}

type runIDKey struct{}

var (
	registry  = rowclean.DefaultRegistry()
	appLogger = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "textcanon",
	Short: "Canonicalize untrusted text",
	Long: `textcanon cleans free-form text into safe, consistent forms:
escaped HTML, tag-free text, slugs, prices, ZIP codes, ASCII and entities.

Clean single values with "apply" or whole CSV files with "csv".
Logs go to stderr; configure them with TEXTCANON_ENV, TEXTCANON_LOG_LEVEL
and TEXTCANON_LOG_FORMAT.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	l, err := newLogger(cfg, cmd)
	if err != nil {
		return err
	}
	appLogger = l

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	cmd.SetContext(context.WithValue(ctx, runIDKey{}, runID))

	appLogger.DebugContext(cmd.Context(), "command started", slog.String("command", cmd.CommandPath()))
	return nil
}

func newLogger(cfg Config, cmd *cobra.Command) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
		logger.WithContextExtractors(csvjson.RowExtractor),
	}

	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}

	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}

	return logger.New(opts...), nil
}
