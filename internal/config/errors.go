package config

import "fmt"

// ValidationError reports a malformed manifest shape detected at the loading
// boundary, before resolution starts. Semantic problems (unknown storages,
// bad auth fields, ambiguous filters) are not ValidationErrors; those belong
// to the registry and resolver.
type ValidationError struct {
	Path   string
	Detail string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid manifest: %s", e.Detail)
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, e.Detail)
}
