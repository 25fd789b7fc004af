package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/schema"
)

// translateStorage converts an HCL storage block into the agnostic model.
// Auth attributes evaluate as constant expressions; each value must convert
// to a string.
func (l *Loader) translateStorage(s *schema.Storage) (*config.Storage, error) {
	storage := &config.Storage{
		Name: s.Name,
		Type: s.Type,
		Auth: make(map[string]string),
	}
	if s.Auth == nil {
		return storage, nil
	}

	attrs, diags := s.Auth.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("storage %q: invalid auth block: %w", s.Name, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("storage %q: auth field %q: %w", s.Name, name, diags)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil || strVal.IsNull() {
			return nil, &config.ValidationError{Detail: fmt.Sprintf("storage %q: auth field %q must be a string", s.Name, name)}
		}
		storage.Auth[name] = strVal.AsString()
	}
	return storage, nil
}

// translateFunction converts an HCL function block into the agnostic model,
// preserving binding declaration order.
func (l *Loader) translateFunction(f *schema.Function) *config.Function {
	fn := &config.Function{Name: f.Name}
	for _, in := range f.Inputs {
		fn.Inputs = append(fn.Inputs, translateBinding(in))
	}
	for _, out := range f.Outputs {
		fn.Outputs = append(fn.Outputs, translateBinding(out))
	}
	return fn
}

func translateBinding(b *schema.Binding) *config.Binding {
	binding := &config.Binding{
		StorageRef: b.Storage,
		Path:       b.Path,
	}
	if b.Filter != nil {
		binding.Filter = &config.Filter{
			Suffix: b.Filter.Suffix,
			Prefix: b.Filter.Prefix,
		}
	}
	return binding
}
