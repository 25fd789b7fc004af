// Package registry implements the Storage Registry: it assigns each declared
// storage backend a unique identifier, resolves names back to identifiers,
// and validates auth capability fields against the provider type's required
// and optional sets. One Registry instance is owned by one compilation run;
// concurrent compilations of independent manifests each build their own.
package registry
