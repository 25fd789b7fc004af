// Package schema defines the HCL block structures of the manifest text
// format. These types mirror the file layout only; the loader translates
// them into the format-agnostic config model before anything else runs.
package schema

import "github.com/hashicorp/hcl/v2"

// AuthBlock holds the auth capability attributes of a storage block. The
// attribute set is open at parse time; the registry decides which fields a
// provider type accepts.
type AuthBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Storage represents a `storage` block: one declared storage backend.
type Storage struct {
	Name string     `hcl:"name,label"`
	Type string     `hcl:"type"`
	Auth *AuthBlock `hcl:"auth,block"`
}

// Filter represents a `filter` block inside an input or output block.
type Filter struct {
	Suffix []string `hcl:"suffix,optional"`
	Prefix []string `hcl:"prefix,optional"`
}

// Binding represents an `input` or `output` block inside a function block.
type Binding struct {
	Storage string  `hcl:"storage"`
	Path    string  `hcl:"path"`
	Filter  *Filter `hcl:"filter,block"`
}

// Function represents a `function` block with its storage bindings.
type Function struct {
	Name    string     `hcl:"name,label"`
	Inputs  []*Binding `hcl:"input,block"`
	Outputs []*Binding `hcl:"output,block"`
}

// ManifestConfig represents the top-level structure of a manifest file.
type ManifestConfig struct {
	Storages  []*Storage  `hcl:"storage,block"`
	Functions []*Function `hcl:"function,block"`
	Body      hcl.Body    `hcl:",remain"`
}
