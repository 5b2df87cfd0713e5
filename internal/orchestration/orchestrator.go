// Package orchestration runs one or more spiral walkers concurrently,
// digests their sequences and compares walkers that share a metric.
package orchestration

import (
	"cmp"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/agbru/spiral/internal/cli"
	"github.com/agbru/spiral/internal/config"
	apperrors "github.com/agbru/spiral/internal/errors"
	"github.com/agbru/spiral/internal/logging"
	"github.com/agbru/spiral/internal/render"
	"github.com/agbru/spiral/internal/ui"
	"github.com/agbru/spiral/pkg/spiral"
)

// BatchSize is the number of points pulled between two context checks and
// progress reports.
const BatchSize = 4096

// ProgressBufferMultiplier sizes the progress channel per walker so slow
// rendering rarely drops an update.
const ProgressBufferMultiplier = 5

// WalkResult is the outcome of one walker.
type WalkResult struct {
	// Name is the registry name of the walker.
	Name string
	// Metric is the metric of the walker.
	Metric spiral.Metric
	// Count is the number of points produced.
	Count uint64
	// Rings is the number of rings reached, center included.
	Rings int64
	// Digest is the xxhash of the produced coordinates, in order.
	Digest uint64
	// Duration is the time taken by the walk.
	Duration time.Duration
	// Visits holds the produced points when they were requested.
	Visits []render.Visit
	// Err contains any error that stopped the walk.
	Err error
}

// Output converts the result for the cli display functions.
func (r WalkResult) Output(cfg config.AppConfig) cli.WalkOutput {
	return cli.WalkOutput{
		Walker: r.Name,
		X:      cfg.X,
		Y:      cfg.Y,
		Max:    cfg.Max,
		Count:  r.Count,
		Digest: r.Digest,
		Visits: r.Visits,
	}
}

// WalkOptions controls a single walk.
type WalkOptions struct {
	// Limit caps the number of points pulled. 0 means no cap.
	Limit int
	// Keep retains every visit in the result.
	Keep bool
	// Progress, if set, receives the cumulative point count after each batch.
	Progress func(points uint64)
}

// Walk drains an iterator, checking ctx between batches of BatchSize points.
// The result's Name, Metric and Duration are left for the caller to fill.
//
// Parameters:
//   - ctx: Cancels the walk between batches.
//   - it: The iterator to drain.
//   - opts: Limit, retention and progress reporting.
//
// Returns:
//   - WalkResult: Count, Rings, Digest and, when kept, Visits. On
//     cancellation it holds what was produced so far and Err is ctx.Err().
func Walk(ctx context.Context, it spiral.Iterator[int64], opts WalkOptions) WalkResult {
	var (
		res    WalkResult
		digest = xxhash.New()
		buf    [16]byte
	)
	for {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}
		exhausted := false
		for range BatchSize {
			if opts.Limit > 0 && res.Count >= uint64(opts.Limit) {
				exhausted = true
				break
			}
			p, ok := it.Next()
			if !ok {
				exhausted = true
				break
			}
			ring := it.Ring()
			binary.LittleEndian.PutUint64(buf[:8], uint64(p.X))
			binary.LittleEndian.PutUint64(buf[8:], uint64(p.Y))
			_, _ = digest.Write(buf[:])
			res.Count++
			res.Rings = max(res.Rings, ring+1)
			if opts.Keep {
				res.Visits = append(res.Visits, render.Visit{X: p.X, Y: p.Y, Ring: ring})
			}
		}
		if opts.Progress != nil {
			opts.Progress(res.Count)
		}
		if exhausted {
			break
		}
	}
	res.Digest = digest.Sum64()
	return res
}

// ExecuteWalks runs the named walkers concurrently around the configured
// center. Results are returned in the order of names. In count mode, unless
// quiet, a progress spinner is drawn on out.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - registry: Provides the walkers.
//   - names: The walkers to run.
//   - cfg: The application configuration.
//   - log: Receives per-walk diagnostics.
//   - out: The io.Writer for the progress display.
//
// Returns:
//   - []WalkResult: One result per name.
func ExecuteWalks(ctx context.Context, registry *spiral.Registry[int64], names []string, cfg config.AppConfig, log logging.Logger, out io.Writer) []WalkResult {
	results := make([]WalkResult, len(names))
	keep := cfg.Mode != config.ModeCount

	var (
		progressChan chan cli.ProgressUpdate
		displayWg    sync.WaitGroup
		walkWg       sync.WaitGroup
	)
	if cfg.Mode == config.ModeCount && !cfg.Quiet {
		totals := make([]uint64, len(names))
		for i, name := range names {
			metric, _ := registry.Metric(name)
			totals[i] = spiral.Size(metric, uint64(cfg.Max))
			if cfg.Limit > 0 {
				totals[i] = min(totals[i], uint64(cfg.Limit))
			}
		}
		progressChan = make(chan cli.ProgressUpdate, len(names)*ProgressBufferMultiplier)
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, progressChan, totals, out)
	}

	// Walk failures are recorded per result, so one walker never stops the others.
	for i, name := range names {
		walkWg.Add(1)
		go func() {
			defer walkWg.Done()
			metric, _ := registry.Metric(name)
			start := time.Now()

			it, err := registry.Create(name, cfg.X, cfg.Y, cfg.Max)
			if err != nil {
				results[i] = WalkResult{Name: name, Metric: metric, Err: classify(name, cfg.Max, err)}
				log.Error("walker rejected its arguments", err, logging.String("walker", name))
				return
			}

			opts := WalkOptions{Limit: cfg.Limit, Keep: keep}
			if progressChan != nil {
				opts.Progress = func(points uint64) {
					select {
					case progressChan <- cli.ProgressUpdate{WalkerIndex: i, Points: points}:
					default:
					}
				}
			}

			res := Walk(ctx, it, opts)
			res.Name, res.Metric, res.Duration = name, metric, time.Since(start)
			if progressChan != nil {
				// The display drains until the channel is closed, so the
				// final count is never dropped.
				progressChan <- cli.ProgressUpdate{WalkerIndex: i, Points: res.Count}
			}
			if res.Err != nil {
				res.Err = apperrors.WalkError{Walker: name, Cause: res.Err}
			}
			results[i] = res

			log.Debug("walk finished",
				logging.String("walker", name),
				logging.Uint64("points", res.Count),
				logging.Int64("rings", res.Rings),
				logging.Duration("elapsed", res.Duration),
			)
		}()
	}

	walkWg.Wait()
	if progressChan != nil {
		close(progressChan)
		displayWg.Wait()
	}
	return results
}

// classify marks a rejected max distance as a validation error so it is
// reported as a configuration problem. The library error stays in the chain.
func classify(name string, maxDistance int64, err error) error {
	var distErr *spiral.DistanceError
	if errors.As(err, &distErr) {
		err = fmt.Errorf("%w: %w", apperrors.NewValidationError("max", "rejected by walker", maxDistance), err)
	}
	return apperrors.WalkError{Walker: name, Cause: err}
}

// AnalyzeComparisonResults prints a summary table of the walks, sorted by
// duration, and checks that walkers sharing a metric produced identical
// sequences.
//
// Parameters:
//   - results: The walk results to analyze.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - error: nil on success; the first walk error when every walker failed;
//     an apperrors.MismatchError when two walkers of one metric disagree.
func AnalyzeComparisonResults(results []WalkResult, out io.Writer) error {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b WalkResult) int {
		if (a.Err == nil) != (b.Err == nil) {
			if a.Err == nil {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Duration, b.Duration)
	})

	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sWalker%s\t%sPoints%s\t%sRings%s\t%sDigest%s\t%sDuration%s\t%sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(),
		ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset())

	var firstError error
	successCount := 0
	for _, res := range sorted {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
			if firstError == nil {
				firstError = res.Err
			}
		} else {
			status = fmt.Sprintf("%sSuccess%s", ui.ColorGreen(), ui.ColorReset())
			successCount++
		}
		duration := cli.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(tw, "%s%s%s\t%d\t%d\t%016x\t%s%s%s\t%s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(),
			res.Count, res.Rings, res.Digest,
			ui.ColorYellow(), duration, ui.ColorReset(),
			status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No walker could complete.\n")
		return firstError
	}

	if err := compareDigests(results); err != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", err)
		return err
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. Walkers of the same metric agree.\n")
	return nil
}

// compareDigests checks every successful walk against the first successful
// walk of the same metric.
func compareDigests(results []WalkResult) error {
	reference := make(map[spiral.Metric]WalkResult)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		ref, ok := reference[res.Metric]
		if !ok {
			reference[res.Metric] = res
			continue
		}
		if ref.Digest != res.Digest || ref.Count != res.Count {
			return apperrors.MismatchError{
				Metric:  res.Metric.String(),
				Walkers: [2]string{ref.Name, res.Name},
				Digests: [2]uint64{ref.Digest, res.Digest},
			}
		}
	}
	return nil
}
