package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
	timeout time.Duration

	cfg *config.Config
	log *zap.Logger
)

// rootCmd is the operator CLI for maintenance tasks that normally run on a schedule
var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Siam Supply shop maintenance tool",
	Long: `shopctl runs back office maintenance against the shop database.

Available commands:
  reclassify          - Recompute customer types for every active customer
  expire-quotations   - Mark sent quotations past their validity date as expired
  render-quotation    - Write a quotation as PDF, HTML, CSV or XLSX
  issue-token         - Sign a JWT for local testing`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadWithSecrets(cmd.Context(), zap.NewNop())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if verbose {
			cfg.Logging.Level = "debug"
		}

		log, err = logger.NewLogger(&cfg.Logging, &cfg.App)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout")

	rootCmd.AddCommand(reclassifyCmd)
	rootCmd.AddCommand(expireQuotationsCmd)
	rootCmd.AddCommand(renderQuotationCmd)
	rootCmd.AddCommand(issueTokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commandContext bounds a command by the --timeout flag
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), timeout)
}
