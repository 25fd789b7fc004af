// Package yaml is the YAML implementation of the config.Loader interface.
// It accepts the list-shaped manifest layout so declaration order survives
// decoding; the identifier counter downstream depends on that order.
package yaml

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
	"github.com/vk/faasbind/internal/fsutil"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot mirrors the top-level YAML document layout.
type fileRoot struct {
	Storages  []*storageNode  `yaml:"storages"`
	Functions []*functionNode `yaml:"functions"`
}

type storageNode struct {
	Name string            `yaml:"name"`
	Type string            `yaml:"type"`
	Auth map[string]string `yaml:"auth"`
}

type functionNode struct {
	Name    string         `yaml:"name"`
	Inputs  []*bindingNode `yaml:"inputs"`
	Outputs []*bindingNode `yaml:"outputs"`
}

type bindingNode struct {
	Storage string      `yaml:"storage"`
	Path    string      `yaml:"path"`
	Filter  *filterNode `yaml:"filter"`
}

type filterNode struct {
	Suffix []string `yaml:"suffix"`
	Prefix []string `yaml:"prefix"`
}

// Load parses every .yaml/.yml file at the given path (a single file or a
// directory) and merges the declared entries into one manifest model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(path, ".yaml", ".yml")
	if err != nil {
		return nil, fmt.Errorf("failed to discover manifest files at %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, &config.ValidationError{Path: path, Detail: "no .yaml manifest files found"}
	}
	logger.Debug("Discovered YAML manifest files.", "count", len(files))

	manifest := &config.Manifest{}
	seenFunctions := make(map[string]struct{})

	for _, file := range files {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}

		for _, st := range root.Storages {
			auth := st.Auth
			if auth == nil {
				auth = make(map[string]string)
			}
			manifest.Storages = append(manifest.Storages, &config.Storage{
				Name: st.Name,
				Type: st.Type,
				Auth: auth,
			})
		}
		for _, fn := range root.Functions {
			if _, dup := seenFunctions[fn.Name]; dup {
				return nil, &config.ValidationError{Path: file, Detail: fmt.Sprintf("function %q is declared more than once", fn.Name)}
			}
			seenFunctions[fn.Name] = struct{}{}
			manifest.Functions = append(manifest.Functions, translateFunction(fn))
		}
	}

	logger.Debug("YAML loading complete.", "storages", len(manifest.Storages), "functions", len(manifest.Functions))
	return manifest, nil
}

// decodeFile strictly decodes one YAML document; unknown fields are a
// boundary validation error, not a silent drop.
func decodeFile(file string) (*fileRoot, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", file, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &fileRoot{}, nil
		}
		return nil, &config.ValidationError{Path: file, Detail: err.Error()}
	}
	return &root, nil
}

func translateFunction(fn *functionNode) *config.Function {
	out := &config.Function{Name: fn.Name}
	for _, b := range fn.Inputs {
		out.Inputs = append(out.Inputs, translateBinding(b))
	}
	for _, b := range fn.Outputs {
		out.Outputs = append(out.Outputs, translateBinding(b))
	}
	return out
}

func translateBinding(b *bindingNode) *config.Binding {
	binding := &config.Binding{
		StorageRef: b.Storage,
		Path:       b.Path,
	}
	if b.Filter != nil {
		binding.Filter = &config.Filter{
			Suffix: b.Filter.Suffix,
			Prefix: b.Filter.Prefix,
		}
	}
	return binding
}
