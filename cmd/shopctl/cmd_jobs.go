package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// reclassifyCmd runs the nightly customer segmentation on demand
var reclassifyCmd = &cobra.Command{
	Use:   "reclassify",
	Short: "Recompute customer types",
	Long: `Walks every active customer and recomputes its type (new, regular,
target or inactive) from order count, total spend and last order date.`,
	Args: cobra.NoArgs,
	RunE: runReclassify,
}

// expireQuotationsCmd runs the quotation expiry sweep on demand
var expireQuotationsCmd = &cobra.Command{
	Use:   "expire-quotations",
	Short: "Expire sent quotations past their validity date",
	Args:  cobra.NoArgs,
	RunE:  runExpireQuotations,
}

func runReclassify(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	result, err := a.customers.ReclassifyAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d customers, %d changed type\n", result.Scanned, result.Changed)
	return nil
}

func runExpireQuotations(cmd *cobra.Command, args []string) error {
	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	expired, err := a.quotations.ExpireOverdue(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Expired %d quotations\n", expired)
	return nil
}
