// Package envfile renders a compiled binding mapping as dotenv-style text.
// Keys are sorted, so the same mapping always renders to the same bytes.
package envfile

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Render returns the mapping as KEY=value lines sorted by key, with a
// trailing newline. Values containing whitespace or '#' are quoted.
func Render(bindings map[string]string) string {
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(quoteIfNeeded(bindings[k]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders the mapping to w.
func Write(w io.Writer, bindings map[string]string) error {
	if _, err := io.WriteString(w, Render(bindings)); err != nil {
		return fmt.Errorf("failed to write environment bindings: %w", err)
	}
	return nil
}

// quoteIfNeeded quotes values a shell or dotenv parser would otherwise
// mangle. Plain values pass through untouched.
func quoteIfNeeded(v string) string {
	if strings.ContainsAny(v, " \t\n#\"") {
		return strconv.Quote(v)
	}
	return v
}
