package resolver

import (
	"context"
	"errors"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/ctxlog"
	"github.com/vk/faasbind/internal/registry"
)

// ResolvedBinding is a binding whose storage reference has been resolved to
// a registry identifier and whose filter has passed the exclusivity check.
type ResolvedBinding struct {
	StorageID   registry.ID
	StorageName string
	Path        string
	Filter      *config.Filter
}

// ResolvedFunction is the validated form of one manifest function.
type ResolvedFunction struct {
	Name    string
	Inputs  []ResolvedBinding
	Outputs []ResolvedBinding
}

// Validator resolves function bindings against one compilation run's
// registry.
type Validator struct {
	reg *registry.Registry
}

// New creates a Validator bound to the given registry.
func New(reg *registry.Registry) *Validator {
	return &Validator{reg: reg}
}

// Validate resolves every binding of one function. It fails fast: the first
// invalid binding stops validation of this function, and a function that
// fails contributes no resolved bindings at all.
func (v *Validator) Validate(fn *config.Function) (*ResolvedFunction, error) {
	resolved := &ResolvedFunction{Name: fn.Name}

	inputs, err := v.resolveBindings(fn, fn.Inputs, DirectionInput)
	if err != nil {
		return nil, err
	}
	resolved.Inputs = inputs

	outputs, err := v.resolveBindings(fn, fn.Outputs, DirectionOutput)
	if err != nil {
		return nil, err
	}
	resolved.Outputs = outputs

	return resolved, nil
}

// ValidateAll validates every function, aggregating all per-function errors
// into a single report. Functions that validated cleanly are returned even
// when others failed; the caller decides whether to proceed (it must not,
// compilation is all-or-nothing).
func (v *Validator) ValidateAll(ctx context.Context, fns []*config.Function) ([]*ResolvedFunction, error) {
	logger := ctxlog.FromContext(ctx)

	var resolved []*ResolvedFunction
	var errs []error
	for _, fn := range fns {
		rf, err := v.Validate(fn)
		if err != nil {
			logger.Debug("Function failed validation.", "function", fn.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		resolved = append(resolved, rf)
	}
	if len(errs) > 0 {
		return resolved, errors.Join(errs...)
	}
	logger.Debug("All functions validated.", "count", len(resolved))
	return resolved, nil
}

// resolveBindings resolves one direction of one function. Within a
// direction, each storage may be bound at most once.
func (v *Validator) resolveBindings(fn *config.Function, bindings []*config.Binding, direction string) ([]ResolvedBinding, error) {
	seen := make(map[string]struct{})
	resolved := make([]ResolvedBinding, 0, len(bindings))

	for _, b := range bindings {
		id, err := v.reg.Resolve(b.StorageRef)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[b.StorageRef]; dup {
			return nil, &DuplicateBindingError{Function: fn.Name, Storage: b.StorageRef, Direction: direction}
		}
		seen[b.StorageRef] = struct{}{}

		if b.Filter != nil && len(b.Filter.Suffix) > 0 && len(b.Filter.Prefix) > 0 {
			return nil, &AmbiguousFilterError{Function: fn.Name, Storage: b.StorageRef}
		}

		resolved = append(resolved, ResolvedBinding{
			StorageID:   id,
			StorageName: b.StorageRef,
			Path:        b.Path,
			Filter:      b.Filter,
		})
	}
	return resolved, nil
}
