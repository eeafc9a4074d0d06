package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/specialistvlad/beamgridgo/internal/app"
	"github.com/specialistvlad/beamgridgo/internal/cli"
	"github.com/specialistvlad/beamgridgo/internal/config"
	"github.com/specialistvlad/beamgridgo/internal/layout"
	"github.com/specialistvlad/beamgridgo/internal/optics"
)

// main is the entrypoint for the beamgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitRuntime)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Configuration and input errors come back as usage ExitErrors.
func run(ctx context.Context, outW, logW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = &cli.ExitError{Code: cli.ExitRuntime, Message: fmt.Sprintf("application panicked: %v", r)}
		}
	}()

	beamApp := app.NewApp(outW, logW, appConfig)
	if err := beamApp.Run(ctx); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps bad input to the usage exit code and leaves everything else
// as a runtime failure.
func classify(err error) error {
	switch {
	case errors.Is(err, config.ErrInvalidManifest),
		errors.Is(err, app.ErrNoLayout),
		errors.Is(err, layout.ErrEmptyGrid),
		errors.Is(err, layout.ErrRaggedGrid),
		errors.Is(err, optics.ErrUnknownTile):
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	default:
		return &cli.ExitError{Code: cli.ExitRuntime, Message: err.Error()}
	}
}
