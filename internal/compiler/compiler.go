// Package compiler implements the Binding Compiler: it flattens a validated
// manifest into the single env-var namespace consumed by the job runner.
// Compile is a pure function of its inputs, so the same registry and the
// same resolved functions always produce the same mapping.
package compiler

import (
	"strings"

	"github.com/vk/faasbind/internal/config"
	"github.com/vk/faasbind/internal/envkey"
	"github.com/vk/faasbind/internal/registry"
	"github.com/vk/faasbind/internal/resolver"
)

// Compile produces the flat environment-variable mapping for a whole
// manifest. Functions are processed in manifest order; when two functions
// bind the same storage id in the same direction, the last one wins for
// that key. Neither the registry nor the resolved functions are mutated.
func Compile(reg *registry.Registry, fns []*resolver.ResolvedFunction) map[string]string {
	bindings := make(map[string]string)

	for _, fn := range fns {
		for _, in := range fn.Inputs {
			id := int(in.StorageID)
			bindings[envkey.Input(id)] = in.Path
			compileFilter(bindings, id, in.Filter)
		}
		for _, out := range fn.Outputs {
			id := int(out.StorageID)
			bindings[envkey.Output(id)] = out.Path
			compileFilter(bindings, id, out.Filter)
		}
	}

	for _, entry := range reg.Entries() {
		for field, value := range entry.Auth {
			bindings[envkey.Auth(entry.Type, field, int(entry.ID))] = value
		}
	}

	return bindings
}

// compileFilter emits the file-selection key for one binding. The validator
// guarantees suffix and prefix are never both present; values join with ':'
// in declaration order.
func compileFilter(bindings map[string]string, id int, filter *config.Filter) {
	if filter == nil {
		return
	}
	if len(filter.Suffix) > 0 {
		bindings[envkey.Suffix(id)] = strings.Join(filter.Suffix, ":")
	}
	if len(filter.Prefix) > 0 {
		bindings[envkey.Prefix(id)] = strings.Join(filter.Prefix, ":")
	}
}
