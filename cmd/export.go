package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-press/internal/config"
	"github.com/kozaktomas/card-press/internal/constants"
	"github.com/kozaktomas/card-press/internal/export"
	"github.com/kozaktomas/card-press/internal/fetch"
	"github.com/kozaktomas/card-press/internal/imaging"
	"github.com/kozaktomas/card-press/internal/order"
	"github.com/kozaktomas/card-press/internal/pdf"
	"github.com/kozaktomas/card-press/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export <order.yaml>",
	Short: "Export a card order as print-ready PDF documents",
	Long: `Export downloads every image referenced by the order, conditions the
images for print, and lays them out into PDF documents.

By default each card produces two full-bleed pages (back, then front),
batched into numbered PDFs. With --grid, card fronts are placed on A3
sheets in a 6x3 grid with dashed cut guides instead.

Example:
  card-press export order.yaml
  card-press export --grid order.yaml
  card-press export --cards-per-file 30 order.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("grid", false, "Lay out card fronts on 6x3 grid sheets with cut guides")
	exportCmd.Flags().Int("cards-per-file", constants.DefaultCardsPerDocument, "Cards per PDF in sequential mode")
	exportCmd.Flags().Int("workers", 0, "Parallel download workers (defaults to CARDPRESS_WORKERS)")
	exportCmd.Flags().Int("quality", constants.JPEGQuality, "JPEG quality target for compression")
	exportCmd.Flags().Bool("compress", false, "Compress images before layout")
	exportCmd.Flags().Bool("downsize", false, "Downsize images before layout")
	exportCmd.Flags().Bool("no-progress", false, "Disable terminal progress output")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.Source.URL == "" {
		return errors.New("CARDPRESS_SOURCE_URL is not set")
	}

	ord, err := order.Load(args[0])
	if err != nil {
		return err
	}

	slots, err := order.Resolve(ord)
	if err != nil {
		return err
	}

	workers := mustGetInt(cmd, "workers")
	if workers <= 0 {
		workers = cfg.Export.Workers
	}

	fetcher, err := fetch.NewHTTPFetcher(cfg.Source.URL, cfg.Source.CacheDir)
	if err != nil {
		return err
	}

	// Shared backs are fetched and conditioned once, so the counters are
	// sized to the distinct resources, not the slot count.
	var reporter progress.Reporter = progress.Noop{}
	if !mustGetBool(cmd, "no-progress") {
		reporter = progress.NewBars(len(order.DistinctResourceIDs(slots)))
	}

	exporter := export.New(
		fetcher,
		&imaging.PureGo{ShavePercent: constants.ShavePercent},
		pdf.NewFactory(constants.CardWidthIn, constants.CardHeightIn),
		reporter,
	)

	report, err := exporter.Execute(cmd.Context(), ord, export.Options{
		GridSheet:        mustGetBool(cmd, "grid"),
		CardsPerDocument: mustGetInt(cmd, "cards-per-file"),
		Workers:          workers,
		Quality:          mustGetInt(cmd, "quality"),
		CompressImages:   mustGetBool(cmd, "compress"),
		DownsizeImages:   mustGetBool(cmd, "downsize"),
		ExportRoot:       cfg.Export.Root,
	})
	if err != nil {
		// A fatal failure after acquisition still carries the report, which
		// explains which resources failed.
		if report != nil {
			fmt.Println()
			fmt.Print(report.Summary())
		}
		return err
	}

	fmt.Println()
	fmt.Print(report.Summary())
	return nil
}
