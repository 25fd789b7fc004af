// Package config defines the format-agnostic manifest model and the Loader
// interface implemented by each manifest text format. Keeping the model free
// of HCL and YAML types lets the registry, resolver, and compiler stay
// independent of how the manifest was written.
package config
