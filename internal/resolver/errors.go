package resolver

import "fmt"

// Binding directions, used in error reports.
const (
	DirectionInput  = "input"
	DirectionOutput = "output"
)

// DuplicateBindingError reports a function binding the same storage twice
// within one direction (twice among its inputs, or twice among its outputs).
type DuplicateBindingError struct {
	Function  string
	Storage   string
	Direction string
}

// Error implements the error interface for DuplicateBindingError.
func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("function %q binds storage %q more than once as an %s", e.Function, e.Storage, e.Direction)
}

// AmbiguousFilterError reports a binding whose filter declares both a suffix
// and a prefix rule. A filter must pick exactly one; absence of a filter
// means "all files" and is never an error.
type AmbiguousFilterError struct {
	Function string
	Storage  string
}

// Error implements the error interface for AmbiguousFilterError.
func (e *AmbiguousFilterError) Error() string {
	return fmt.Sprintf("function %q, storage %q: filter declares both suffix and prefix", e.Function, e.Storage)
}
