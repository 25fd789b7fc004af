package config

import "context"

// Loader is the interface for a format-specific manifest loader. A loader
// reads one file, or every file with its extension under a directory, and
// translates the result into the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, path string) (*Manifest, error)
}
