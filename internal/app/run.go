package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/faasbind/internal/compiler"
	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
	"github.com/vk/faasbind/internal/envfile"
	"github.com/vk/faasbind/internal/registry"
	"github.com/vk/faasbind/internal/resolver"
)

// Run executes one compilation: load the manifest, resolve it, and render
// the environment bindings to the configured destination. In check-only
// mode the bindings are computed but not emitted.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "manifest", a.config.ManifestPath)

	manifest, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	a.logger.Debug("Manifest loaded.", "storages", len(manifest.Storages), "functions", len(manifest.Functions))

	bindings, err := a.Compile(ctx, manifest)
	if err != nil {
		return err
	}

	if a.config.CheckOnly {
		a.logger.Info("Manifest is valid.", "bindings", len(bindings))
		return nil
	}

	if a.config.OutputPath == "-" {
		return envfile.Write(a.outW, bindings)
	}
	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := envfile.Write(f, bindings); err != nil {
		return err
	}
	a.logger.Info("Environment bindings written.", "path", a.config.OutputPath, "count", len(bindings))
	return nil
}

// Compile runs the resolver pipeline over a loaded manifest: registration,
// binding validation, then flattening. Every registration and validation
// error is collected into one aggregated report; if any is present, no
// bindings are produced.
func (a *App) Compile(ctx context.Context, manifest *config.Manifest) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	reg := registry.New()
	var errs []error
	for _, st := range manifest.Storages {
		if _, err := reg.Register(st.Name, st.Type, st.Auth); err != nil {
			logger.Debug("Storage failed registration.", "storage", st.Name, "error", err)
			errs = append(errs, err)
		}
	}

	validator := resolver.New(reg)
	resolved, err := validator.ValidateAll(ctx, manifest.Functions)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("manifest validation failed:\n%w", errors.Join(errs...))
	}

	bindings := compiler.Compile(reg, resolved)
	logger.Debug("Manifest compiled.", "bindings", len(bindings))
	return bindings, nil
}
