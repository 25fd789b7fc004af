package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // .hcl or .yaml manifest file, or a directory of them
	OutputPath   string // "-" writes the bindings to stdout

	CheckOnly bool // validate the manifest without emitting bindings
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "-"
	}
	return &cfg, nil
}
