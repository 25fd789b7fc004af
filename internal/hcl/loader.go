package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
	"github.com/vk/faasbind/internal/fsutil"
	"github.com/vk/faasbind/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file at the given path (a single file or a
// directory) and merges the declared blocks into one manifest model. Block
// order within a file and file discovery order together define manifest
// order, which downstream stages rely on for deterministic identifiers.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifest files at %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, &config.ValidationError{Path: path, Detail: "no .hcl manifest files found"}
	}
	logger.Debug("Discovered HCL manifest files.", "count", len(files))

	manifest := &config.Manifest{}
	seenFunctions := make(map[string]struct{})
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root schema.ManifestConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		for _, st := range root.Storages {
			storage, err := l.translateStorage(st)
			if err != nil {
				return nil, fmt.Errorf("manifest %s: %w", file, err)
			}
			manifest.Storages = append(manifest.Storages, storage)
		}
		for _, fn := range root.Functions {
			if _, dup := seenFunctions[fn.Name]; dup {
				return nil, &config.ValidationError{Path: file, Detail: fmt.Sprintf("function %q is declared more than once", fn.Name)}
			}
			seenFunctions[fn.Name] = struct{}{}
			manifest.Functions = append(manifest.Functions, l.translateFunction(fn))
		}
	}

	logger.Debug("HCL loading complete.", "storages", len(manifest.Storages), "functions", len(manifest.Functions))
	return manifest, nil
}
