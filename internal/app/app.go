package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/spiral/internal/cli"
	"github.com/agbru/spiral/internal/config"
	apperrors "github.com/agbru/spiral/internal/errors"
	"github.com/agbru/spiral/internal/logging"
	"github.com/agbru/spiral/internal/orchestration"
	"github.com/agbru/spiral/internal/ui"
	"github.com/agbru/spiral/pkg/spiral"
)

// Application represents the spiral tool instance.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Registry provides the walkers.
	Registry *spiral.Registry[int64]
	// Logger receives diagnostics; it writes to ErrWriter.
	Logger logging.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The command-line arguments, program name first (typically os.Args).
//   - errWriter: The writer for error output and diagnostics.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := spiral.NewRegistry[int64]()

	programName := "spiral"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, registry.List())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	return &Application{
		Config:    cfg,
		Registry:  registry,
		Logger:    logging.NewLogger(errWriter, "spiral", level),
		ErrWriter: errWriter,
	}, nil
}

// Run executes the configured walks and writes their output.
//
// Parameters:
//   - ctx: The parent context; a timeout and signal handling are added.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}
	if a.Logger == nil {
		a.Logger = logging.NewNopLogger()
	}

	ui.InitTheme(a.Config.NoColor, out)

	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel()

	start := time.Now()
	walkers := a.Config.Walkers(a.Registry.List())
	chatty := !a.Config.Quiet && a.Config.Mode != config.ModeJSON
	if chatty {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(walkers, out)
	}
	a.Logger.Info("starting walks",
		logging.String("metric", a.Config.Metric),
		logging.String("mode", a.Config.Mode),
		logging.Int64("max", a.Config.Max),
	)

	results := orchestration.ExecuteWalks(ctx, a.Registry, walkers, a.Config, a.Logger, out)

	if err := a.display(results, out); err != nil {
		a.Logger.Error("writing output failed", err)
		return apperrors.HandleRunError(err, time.Since(start), a.ErrWriter, ui.ThemeColors{})
	}

	summaryOut := out
	if !chatty {
		summaryOut = io.Discard
	}
	err := orchestration.AnalyzeComparisonResults(results, summaryOut)
	if err != nil {
		a.Logger.Error("run failed", err)
	}
	return apperrors.HandleRunError(err, time.Since(start), a.ErrWriter, ui.ThemeColors{})
}

// display writes the walks in the configured mode. Failed walks are left to
// the comparison summary, except in JSON where they carry an error field.
func (a *Application) display(results []orchestration.WalkResult, out io.Writer) error {
	if a.Config.Mode == config.ModeJSON {
		walks := make([]cli.WalkOutput, len(results))
		errs := make([]error, len(results))
		for i, res := range results {
			walks[i], errs[i] = res.Output(a.Config), res.Err
		}
		return cli.WriteJSON(out, walks, errs)
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		w := res.Output(a.Config)
		switch a.Config.Mode {
		case config.ModeGrid:
			if err := cli.DisplayGrid(out, w); err != nil {
				return err
			}
		case config.ModeList:
			cli.DisplayList(out, w)
		case config.ModeCount:
			if a.Config.Quiet {
				cli.DisplayCount(out, w)
			}
		}
	}
	return nil
}

// runCompletion prints the completion script for the configured shell.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError reports whether err means -h or -help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
