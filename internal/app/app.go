package app

import (
	"io"
	"log/slog"

	"github.com/vk/faasbind/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. It owns one compilation run end to end.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Bindings are
// written to outW; log records go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
