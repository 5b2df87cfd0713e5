package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/spiral/internal/config"
	"github.com/agbru/spiral/internal/ui"
)

// PrintExecutionConfig displays the run configuration.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	limit := "none"
	if cfg.Limit > 0 {
		limit = formatNumber(uint64(cfg.Limit))
	}
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Walking %d rings around %s(%d,%d)%s in %s mode with a timeout of %s%s%s.\n",
		cfg.Max, ui.ColorBlue(), cfg.X, cfg.Y, ui.ColorReset(), cfg.Mode,
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Point limit per walker: %s. Environment: %d logical processors, Go %s.\n",
		limit, runtime.NumCPU(), runtime.Version())
}

// PrintExecutionMode displays whether one walker runs or several are
// compared.
//
// Parameters:
//   - walkers: The names of the walkers that will run.
//   - out: The writer for standard output.
func PrintExecutionMode(walkers []string, out io.Writer) {
	var modeDesc string
	if len(walkers) > 1 {
		modeDesc = fmt.Sprintf("Parallel walk of %d walkers", len(walkers))
	} else {
		modeDesc = fmt.Sprintf("Single walk with the %s%s%s walker",
			ui.ColorGreen(), walkers[0], ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
