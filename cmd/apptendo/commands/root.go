package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"apptendo/lib/productdb"
	"apptendo/lib/telemetry"
	"apptendo/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

type globalsKey struct{}

type globals struct {
	Config    Config
	Telemetry telemetry.Telemetry
}

func getGlobals(ctx context.Context) *globals {
	return ctx.Value(globalsKey{}).(*globals)
}

var rootCmd = &cobra.Command{
	Use:   "apptendo",
	Short: "apptendo scrapes the timeline of Apple products into a JSON cache and a sqlite database.",
	Long: `Running apptendo without a subcommand fetches the timeline page, adds up to
25 products that are not cached yet, rewrites the JSON cache and mirrors
it into the database.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
		telemetry.InitSlog(cfg.Debug)

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "apptendo")
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no telemetry.json5 found, exporters disabled")
		} else if err != nil {
			slog.Warn("failed to set up telemetry", "err", err)
		}

		cmd.SetContext(context.WithValue(cmd.Context(), globalsKey{}, &globals{
			Config:    cfg,
			Telemetry: tel,
		}))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		err := getGlobals(cmd.Context()).Telemetry.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		runScrape(cmd.Context(), getGlobals(cmd.Context()).Config)
	},
}

func openMirror(cfg Config) (productdb.Mirror, func()) {
	database, err := cfg.DB.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return productdb.NewMirror(database), func() {
		database.Close()
	}
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
