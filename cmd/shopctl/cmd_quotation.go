package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/spf13/cobra"
)

var (
	renderFormat string
	renderOut    string
)

// renderQuotationCmd writes a quotation document to disk
var renderQuotationCmd = &cobra.Command{
	Use:   "render-quotation QUOTATION_ID",
	Short: "Write a quotation as PDF, HTML, CSV or XLSX",
	Long: `Renders a quotation the same way the API does. A sent quotation's
archived PDF is returned as stored; drafts are rendered on demand.`,
	Args: cobra.ExactArgs(1),
	RunE: runRenderQuotation,
}

func init() {
	renderQuotationCmd.Flags().StringVarP(&renderFormat, "format", "f", "pdf", "Output format: pdf, html, csv or xlsx")
	renderQuotationCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file or directory (default: <number>.<ext> in the current directory)")
}

func runRenderQuotation(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid quotation id %q: %w", args[0], err)
	}

	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	var file *service.File
	switch renderFormat {
	case "pdf":
		file, err = a.quotations.RenderPDF(ctx, id)
	case "html":
		file, err = a.quotations.RenderHTML(ctx, id)
	default:
		format, perr := export.ParseFormat(renderFormat)
		if perr != nil {
			return fmt.Errorf("unsupported format %q", renderFormat)
		}
		file, err = a.quotations.Export(ctx, id, format)
	}
	if err != nil {
		return err
	}

	path := outputPath(renderOut, file.Filename)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", path, len(file.Data))
	return nil
}

// outputPath resolves --out: empty uses the suggested name, a directory receives it
func outputPath(out, suggested string) string {
	if out == "" {
		return suggested
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, suggested)
	}
	return out
}
