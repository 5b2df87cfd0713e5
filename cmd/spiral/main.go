// Command spiral walks integer grid points around a center in spiral order
// and prints them as a grid, a list, JSON or a digest per walker.
package main

import (
	"context"
	"os"

	"github.com/agbru/spiral/internal/app"
	apperrors "github.com/agbru/spiral/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) > 1 && app.HasVersionFlag(args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}
	return application.Run(context.Background(), os.Stdout)
}
