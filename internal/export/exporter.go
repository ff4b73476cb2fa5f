// Package export drives a full export run: resolve the card order, acquire
// image resources with bounded parallelism, condition them into print-ready
// form, and lay them out into PDF documents.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/kozaktomas/card-press/internal/constants"
	"github.com/kozaktomas/card-press/internal/fetch"
	"github.com/kozaktomas/card-press/internal/imaging"
	"github.com/kozaktomas/card-press/internal/layout"
	"github.com/kozaktomas/card-press/internal/order"
	"github.com/kozaktomas/card-press/internal/progress"
)

// Options holds the resolved configuration for one export run. The value is
// immutable for the duration of the run.
type Options struct {
	GridSheet        bool // grid-sheet mode instead of sequential documents
	CardsPerDocument int  // sequential mode batch size
	Workers          int  // bounded pool size for fetch and conditioning
	Quality          int  // JPEG compression quality target
	CompressImages   bool // apply the compression step
	DownsizeImages   bool // apply the downsize step
	ExportRoot       string
}

// Exporter wires the pipeline stages together. All collaborators are
// capability interfaces so tests can substitute fakes.
type Exporter struct {
	fetcher     fetch.Fetcher
	transformer imaging.Transformer
	docs        layout.DocumentFactory
	reporter    progress.Reporter
}

// New creates an exporter from its collaborators.
func New(fetcher fetch.Fetcher, transformer imaging.Transformer, docs layout.DocumentFactory, reporter progress.Reporter) *Exporter {
	return &Exporter{
		fetcher:     fetcher,
		transformer: transformer,
		docs:        docs,
		reporter:    reporter,
	}
}

// Execute runs the export pipeline for the given order. Per-resource fetch
// and conditioning failures do not abort the run: their dependent slots are
// excluded from layout and listed in the report. Resolution and layout
// failures are fatal; a fatal failure after acquisition still returns the
// report assembled so far, so callers can show which resources failed and
// why nothing (or not everything) was saved.
func (e *Exporter) Execute(ctx context.Context, ord *order.CardOrder, opts Options) (*Report, error) {
	e.reporter.SetState(progress.StateInitializing)

	slots, err := order.Resolve(ord)
	if err != nil {
		return nil, err
	}

	if opts.Workers <= 0 {
		opts.Workers = constants.DefaultWorkers
	}
	if opts.Quality <= 0 {
		opts.Quality = constants.JPEGQuality
	}
	if opts.ExportRoot == "" {
		opts.ExportRoot = constants.DefaultExportRoot
	}

	ids := order.DistinctResourceIDs(slots)

	e.reporter.SetState(progress.StateDownloading)
	pipeline := fetch.NewPipeline(e.fetcher, opts.Workers)
	results := pipeline.Run(ctx, ids, e.reporter)

	e.reporter.SetState(progress.StateProcessing)
	e.conditionAll(ids, results, opts)

	report := &Report{
		RunID:          uuid.NewString(),
		SkippedSlots:   make(map[int]error),
		ResourceErrors: results.Errors(),
	}

	// Exclude slots whose front or resolved back failed. Survivors keep
	// their ascending order and are laid out contiguously.
	var survivors []layout.Slot
	for _, slot := range slots {
		if err := results.Err(slot.FrontID); err != nil {
			report.SkippedSlots[slot.Index] = err
			continue
		}
		if err := results.Err(slot.BackID); err != nil {
			report.SkippedSlots[slot.Index] = err
			continue
		}
		survivors = append(survivors, layout.Slot{
			Index:     slot.Index,
			FrontPath: results.Path(slot.FrontID),
			BackPath:  results.Path(slot.BackID),
		})
	}

	dir := filepath.Join(opts.ExportRoot, Slug(ord.Name))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return report, fmt.Errorf("could not create export directory: %w", err)
	}
	report.ExportDir = dir

	var documents []string
	if opts.GridSheet {
		documents, err = layout.ExportGridSheet(survivors, e.docs, layout.DefaultSheetConfig(), dir, e.reporter)
	} else {
		documents, err = layout.ExportSequential(survivors, e.docs, layout.SequentialConfig{
			CardWidthIn:      constants.CardWidthIn,
			CardHeightIn:     constants.CardHeightIn,
			CardsPerDocument: opts.CardsPerDocument,
		}, dir, e.reporter)
	}
	if err != nil {
		return report, err
	}
	report.Documents = documents

	e.reporter.SetState(progress.StateDone)
	return report, nil
}

// conditionAll conditions every successfully fetched artifact on the same
// bounded pool used for downloads. Conditioning of a resource starts only
// after the fetch barrier, so its own fetch has always completed. One
// process tick is emitted per resource regardless of outcome.
func (e *Exporter) conditionAll(ids []string, results *fetch.ResultSet, opts Options) {
	conditioner := imaging.NewConditioner(
		e.transformer,
		constants.CardAspectWidth,
		constants.CardAspectHeight,
		opts.Quality,
		constants.DownsizePercent,
		imaging.Policy{Compress: opts.CompressImages, Downsize: opts.DownsizeImages},
	)

	semaphore := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)
		go func(resourceID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			defer e.reporter.TickProcess()

			if results.Err(resourceID) != nil {
				return
			}

			conditioned, err := conditioner.Condition(resourceID, results.Path(resourceID))
			if err != nil {
				results.SetErr(resourceID, err)
				return
			}
			results.SetPath(resourceID, conditioned)
		}(id)
	}

	wg.Wait()
}
