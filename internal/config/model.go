package config

// Manifest is the unified, format-agnostic representation of a storage
// binding manifest: every declared storage backend plus every function that
// binds them. Loaders for each text format translate into this model; the
// resolver pipeline never sees format-specific types.
type Manifest struct {
	Storages  []*Storage
	Functions []*Function
}

// Storage is one declared storage backend. Auth maps capability names
// (user, pass, token, space, host) to their values; which capabilities are
// required depends on Type and is enforced by the registry, not here.
type Storage struct {
	Name string
	Type string
	Auth map[string]string
}

// Function is one declared function with its input and output bindings.
// Binding order is declaration order and is preserved for deterministic
// compilation output.
type Function struct {
	Name    string
	Inputs  []*Binding
	Outputs []*Binding
}

// Binding associates a function's input or output with a storage backend,
// a provider-relative path, and an optional file-selection filter. The path
// is opaque to the resolver and never checked for existence.
type Binding struct {
	StorageRef string
	Path       string
	Filter     *Filter
}

// Filter selects which files belong to a binding. Suffix and Prefix are
// mutually exclusive; the validator rejects a binding carrying both. An
// absent filter means "all files".
type Filter struct {
	Suffix []string
	Prefix []string
}
