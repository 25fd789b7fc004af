// Package resolver implements the Binding Validator: it resolves every
// function's input and output storage references against the registry and
// enforces the structural binding invariants. Validation fails fast inside
// one function but continues across functions, so a single run reports every
// broken function at once.
package resolver
