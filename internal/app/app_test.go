package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/agbru/spiral/internal/config"
	apperrors "github.com/agbru/spiral/internal/errors"
	"github.com/agbru/spiral/internal/testutil"
	"github.com/agbru/spiral/pkg/spiral"
)

func newTestApp(cfg config.AppConfig) *Application {
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Minute
	}
	if cfg.Metric == "" {
		cfg.Metric = config.DefaultMetric
	}
	cfg.NoColor = true
	return &Application{
		Config:    cfg,
		Registry:  spiral.NewRegistry[int64](),
		ErrWriter: &bytes.Buffer{},
	}
}

// TestNew tests the New function for creating Application instances.
func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("Valid args create application", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"spiral", "-metric", "manhattan", "-max", "3"}, &errBuf)
		if err != nil {
			t.Fatalf("New() returned unexpected error: %v", err)
		}
		if app.Config.Max != 3 || app.Config.Metric != spiral.NameManhattan {
			t.Errorf("unexpected config: %+v", app.Config)
		}
		if app.Registry == nil || app.Logger == nil {
			t.Error("Registry and Logger should be set")
		}
	})

	t.Run("Invalid args return error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{"spiral", "-invalid-flag"}, &errBuf)
		if err == nil {
			t.Error("New() should return error for invalid args")
		}
		if app != nil {
			t.Error("New() should return nil application on error")
		}
	})

	t.Run("Unknown metric is a config error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		_, err := New([]string{"spiral", "-metric", "hexagonal"}, &errBuf)
		if apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
			t.Errorf("expected a config error, got %v", err)
		}
	})

	t.Run("Help flag returns error", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		_, err := New([]string{"spiral", "-h"}, &errBuf)
		if !IsHelpError(err) {
			t.Errorf("expected a help error, got %v", err)
		}
	})

	t.Run("Empty args slice handled correctly", func(t *testing.T) {
		t.Parallel()
		var errBuf bytes.Buffer
		app, err := New([]string{}, &errBuf)
		if err != nil {
			t.Fatalf("New() should handle empty args without error, got: %v", err)
		}
		if app.Config.Max != config.DefaultMax {
			t.Errorf("Expected default Max=%d, got %d", config.DefaultMax, app.Config.Max)
		}
	})
}

// TestApplicationRun tests the Application.Run method end to end.
func TestApplicationRun(t *testing.T) {
	t.Parallel()

	t.Run("Grid for a single walker", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{Metric: spiral.NameManhattan, Max: 2, Mode: config.ModeGrid})

		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitSuccess {
			t.Fatalf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
		}
		output := testutil.StripAnsiCodes(outBuf.String())
		for _, want := range []string{
			"--- Execution Configuration ---",
			"manhattan around (0,0), max 2: 5 points",
			"\n. 5 .\n4 1 2\n. 3 .\n",
			"Comparison Summary",
			"Global Status: Success",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Output should contain %q. Output:\n%s", want, output)
			}
		}
	})

	t.Run("Quiet count for every walker", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{Max: 3, Mode: config.ModeCount, Quiet: true})

		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitSuccess {
			t.Fatalf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
		}
		lines := testutil.Lines(outBuf.String())
		want := map[string]string{
			spiral.NameChebyshev:            "25",
			spiral.NameManhattan:            "13",
			spiral.NameEuclidean:            "25",
			spiral.NameEuclideanIncremental: "25",
		}
		if len(lines) != len(want) {
			t.Fatalf("expected %d lines, got %q", len(want), lines)
		}
		digests := map[string]string{}
		for _, line := range lines {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				t.Fatalf("malformed line %q", line)
			}
			if want[fields[0]] != fields[1] {
				t.Errorf("%s: count %s, want %s", fields[0], fields[1], want[fields[0]])
			}
			digests[fields[0]] = fields[2]
		}
		if digests[spiral.NameEuclidean] != digests[spiral.NameEuclideanIncremental] {
			t.Errorf("euclidean strategies disagree: %v", digests)
		}
		if strings.Contains(outBuf.String(), "Comparison Summary") {
			t.Error("quiet mode should not print the summary")
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{Metric: spiral.NameChebyshev, X: 5, Y: -5, Max: 2, Mode: config.ModeJSON})

		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitSuccess {
			t.Fatalf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
		}
		var doc []struct {
			Walker string     `json:"walker"`
			Count  uint64     `json:"count"`
			Points [][3]int64 `json:"points"`
		}
		if err := json.Unmarshal(outBuf.Bytes(), &doc); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, outBuf.String())
		}
		if len(doc) != 1 || doc[0].Walker != spiral.NameChebyshev || doc[0].Count != 9 {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc[0].Points[0] != [3]int64{5, -5, 0} {
			t.Errorf("first point should be the center, got %v", doc[0].Points[0])
		}
	})

	t.Run("Version", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{ShowVersion: true})
		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitSuccess {
			t.Errorf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
		}
		if !strings.HasPrefix(outBuf.String(), "spiral ") {
			t.Errorf("unexpected version output: %q", outBuf.String())
		}
	})

	t.Run("Completion script", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{Completion: "bash"})
		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitSuccess {
			t.Fatalf("Expected exit code %d, got %d", apperrors.ExitSuccess, code)
		}
		if !strings.Contains(outBuf.String(), "chebyshev euclidean euclidean-incremental manhattan all") {
			t.Errorf("completion should list the registered walkers, got:\n%s", outBuf.String())
		}
	})

	t.Run("Completion for an unknown shell", func(t *testing.T) {
		t.Parallel()
		app := newTestApp(config.AppConfig{Completion: "tcsh"})
		if code := app.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorConfig {
			t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorConfig, code)
		}
	})

	t.Run("Timeout failure", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{
			Metric:  spiral.NameManhattan,
			Max:     spiral.MaxIncrementalDistance,
			Mode:    config.ModeCount,
			Quiet:   true,
			Timeout: 20 * time.Millisecond,
		})

		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitErrorTimeout {
			t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorTimeout, code)
		}
		errOut := app.ErrWriter.(*bytes.Buffer).String()
		if !strings.Contains(errOut, "Timeout") {
			t.Errorf("stderr should report the timeout, got %q", errOut)
		}
	})

	t.Run("Walker rejects the distance", func(t *testing.T) {
		t.Parallel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{
			Metric: spiral.NameEuclidean,
			Max:    spiral.MaxTableDistance + 1,
			Mode:   config.ModeCount,
			Quiet:  true,
		})

		if code := app.Run(context.Background(), &outBuf); code != apperrors.ExitErrorConfig {
			t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorConfig, code)
		}
	})

	t.Run("Canceled parent context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var outBuf bytes.Buffer
		app := newTestApp(config.AppConfig{Metric: spiral.NameManhattan, Max: 1 << 20, Mode: config.ModeCount, Quiet: true})

		if code := app.Run(ctx, &outBuf); code != apperrors.ExitErrorCanceled {
			t.Errorf("Expected exit code %d, got %d", apperrors.ExitErrorCanceled, code)
		}
	})
}

func TestIsHelpError(t *testing.T) {
	t.Parallel()
	_, err := config.ParseConfig("spiral", []string{"-help"}, &bytes.Buffer{}, spiral.NewRegistry[int64]().List())
	if !IsHelpError(err) {
		t.Error("IsHelpError should return true for help flag error")
	}
	if IsHelpError(nil) {
		t.Error("IsHelpError should return false for nil")
	}
}

func TestSetupLifecycle(t *testing.T) {
	t.Parallel()
	ctx, cancel := SetupLifecycle(context.Background(), time.Hour)
	if ctx.Err() != nil {
		t.Fatalf("fresh context already done: %v", ctx.Err())
	}
	cancel()
	<-ctx.Done()

	ctx, cancel = SetupLifecycle(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()
	if ctx.Err() != context.DeadlineExceeded {
		t.Errorf("expected DeadlineExceeded, got %v", ctx.Err())
	}
}
