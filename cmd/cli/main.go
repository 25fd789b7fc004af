package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/faasbind/internal/app"
	"github.com/vk/faasbind/internal/cli"
	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/hcl"
	"github.com/vk/faasbind/internal/yaml"
)

// main is the entrypoint for the faasbind application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Compiled bindings go to outW; logs and errors go to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	faasbindApp := app.NewApp(outW, logW, appConfig, newLoader(appConfig.ManifestPath))
	return faasbindApp.Run(context.Background())
}

// newLoader picks the manifest loader from the path's extension. Directories
// and unknown extensions default to HCL, the native manifest format.
func newLoader(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
