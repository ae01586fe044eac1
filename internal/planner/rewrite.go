package planner

import (
	"path/filepath"
	"strings"
)

// OutputRel rewrites a path relative to the input root: components exactly
// equal to inExt become outExt, then the last component's suffix becomes
// ".<outExt>".
func OutputRel(rel, inExt, outExt string) string {
	parts := strings.Split(filepath.Clean(rel), string(filepath.Separator))
	for i, part := range parts {
		if part == inExt {
			parts[i] = outExt
		}
	}
	last := len(parts) - 1
	parts[last] = WithSuffix(parts[last], "."+outExt)
	return filepath.Join(parts...)
}

// WithSuffix replaces the suffix of the final path element with suffix, or
// appends it when there is none. A leading dot does not start a suffix, so
// ".png" has none and "x." has none.
func WithSuffix(path, suffix string) string {
	dir, name := filepath.Split(path)
	return dir + stem(name) + suffix
}

func stem(name string) string {
	i := strings.LastIndex(name, ".")
	if i > 0 && i < len(name)-1 {
		return name[:i]
	}
	return name
}

// ExpandCommand substitutes {i} with input and {o} with output in every
// template token. {{ and }} produce literal braces; any other {...} is kept.
func ExpandCommand(template []string, input, output string) []string {
	r := strings.NewReplacer("{{", "{", "}}", "}", "{i}", input, "{o}", output)
	args := make([]string, len(template))
	for i, tok := range template {
		args[i] = r.Replace(tok)
	}
	return args
}
