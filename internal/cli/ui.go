// Package cli formats the output of the spiral tool: the execution banner,
// grid and list printouts, JSON documents and the progress spinner shown
// while long walks are counted.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds below a millisecond, milliseconds below a second,
// and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// ProgressRefreshRate defines the refresh frequency of the progress line.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressUpdate reports the number of points a walker has produced so far.
type ProgressUpdate struct {
	// WalkerIndex identifies the walker in the order it was started.
	WalkerIndex int
	// Points is the cumulative number of points produced.
	Points uint64
}

// ProgressState aggregates the progress of concurrent walkers against the
// number of points each is expected to produce.
type ProgressState struct {
	points []uint64
	totals []uint64
}

// NewProgressState creates a ProgressState for walkers expected to produce
// totals[i] points each.
func NewProgressState(totals []uint64) *ProgressState {
	return &ProgressState{
		points: make([]uint64, len(totals)),
		totals: totals,
	}
}

// Update records the cumulative point count of a walker. Out-of-range
// indices are ignored.
func (ps *ProgressState) Update(index int, points uint64) {
	if index >= 0 && index < len(ps.points) {
		ps.points[index] = points
	}
}

// Points returns the number of points produced by every walker together.
func (ps *ProgressState) Points() uint64 {
	var sum uint64
	for _, p := range ps.points {
		sum += p
	}
	return sum
}

// Fraction returns the overall progress in [0, 1].
func (ps *ProgressState) Fraction() float64 {
	var done, total float64
	for i, t := range ps.totals {
		done += float64(min(ps.points[i], t))
		total += float64(t)
	}
	if total == 0 {
		return 0
	}
	return done / total
}

// progressBar renders progress in [0, 1] as a bar of length characters.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}

// DisplayProgress shows a spinner with a progress bar until progressChan is
// closed, then prints a final line. It runs in its own goroutine.
//
// Parameters:
//   - wg: Signaled when the display routine is complete.
//   - progressChan: The channel receiving progress updates.
//   - totals: The expected number of points of each walker.
//   - out: The io.Writer to which the progress is rendered.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totals []uint64, out io.Writer) {
	defer wg.Done()
	if len(totals) == 0 {
		for range progressChan {
		}
		return
	}

	state := NewProgressState(totals)
	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				stopped = true
				fmt.Fprintf(out, "Walked %s points [%s] %6.2f%%\n",
					formatNumber(state.Points()), progressBar(state.Fraction(), ProgressBarWidth), state.Fraction()*100)
				return
			}
			state.Update(update.WalkerIndex, update.Points)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" Walking: %s points [%s] %6.2f%%",
				formatNumber(state.Points()), progressBar(state.Fraction(), ProgressBarWidth), state.Fraction()*100))
		}
	}
}

// formatNumber inserts thousand separators into an unsigned number.
func formatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var builder strings.Builder
	builder.Grow(len(s) + (len(s)-1)/3)
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	builder.WriteString(s[:first])
	for i := first; i < len(s); i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
