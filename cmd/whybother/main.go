package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jose-valero/whybother-dashboard/internal/adapters/statsapi"
	"github.com/jose-valero/whybother-dashboard/internal/infra/config"
	"github.com/jose-valero/whybother-dashboard/internal/infra/logging"
)

var (
	cfgPath string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "whybother",
	Short: "WhyBother football stats dashboard",
	Long: `whybother renders the WhyBother stats API as an HTML dashboard.

The API base URL comes from WHYBOTHER_API_URL (or api_url in the config
file) and defaults to http://127.0.0.1:8000.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load() // .env es opcional

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd, matchesCmd)
}

func newAPIClient() *statsapi.Client {
	return statsapi.New(
		statsapi.WithBaseURL(cfg.APIURL),
		statsapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		statsapi.WithLogger(logger.Named("statsapi")),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
