package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/specialistvlad/beamgridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	ctx        context.Context
	config     *Config
	httpServer *http.Server
	phase      atomic.Value
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		ctx:    ctxlog.WithLogger(context.Background(), logger),
		config: cfg,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
