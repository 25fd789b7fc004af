// Package app owns the application lifecycle: it validates the runtime
// configuration, builds the per-run logger, drives the manifest through the
// resolver pipeline, and renders the compiled bindings.
package app
