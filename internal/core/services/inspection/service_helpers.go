package inspection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmpltools/staticfn/internal/core/domain/binding"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"github.com/tmpltools/staticfn/internal/core/services/resolution"
)

// sortedKeys returns the map's keys in lexical order so diagnostics come out
// in a stable order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// checkAlias validates a single alias table entry.
func checkAlias(name, target string) []ports.Diagnostic {
	var diags []ports.Diagnostic
	if target == "" {
		diags = append(diags, ports.Diagnostic{
			Level:   ports.DiagnosticError,
			Message: fmt.Sprintf("alias %q has an empty target", name),
		})
	}
	// The prefix of a call name is a single underscore-free segment, so an
	// alias key containing "_" can never be matched.
	if strings.Contains(name, "_") {
		diags = append(diags, ports.Diagnostic{
			Level:   ports.DiagnosticWarning,
			Message: fmt.Sprintf("alias %q contains %q and can never match a call prefix", name, "_"),
		})
	}
	return diags
}

// checkShortcut validates a single shortcut table entry against the full set.
func checkShortcut(name, target string, set binding.Set) []ports.Diagnostic {
	var diags []ports.Diagnostic
	if target == "" {
		return append(diags, ports.Diagnostic{
			Level:   ports.DiagnosticError,
			Message: fmt.Sprintf("shortcut %q has an empty target", name),
		})
	}

	if _, chained := set.Shortcuts[target]; chained {
		diags = append(diags, ports.Diagnostic{
			Level: ports.DiagnosticWarning,
			Message: fmt.Sprintf(
				"shortcut %q points at %q, itself a shortcut; substitution is single-pass and will not chase it",
				name, target),
		})
	}

	prefix, _, ok := resolution.SplitName(target)
	if !ok {
		diags = append(diags, ports.Diagnostic{
			Level: ports.DiagnosticWarning,
			Message: fmt.Sprintf(
				"shortcut %q targets %q, which does not split into a prefix and a method segment",
				name, target),
		})
		return diags
	}
	if _, ok := set.Aliases[prefix]; !ok {
		diags = append(diags, ports.Diagnostic{
			Level: ports.DiagnosticWarning,
			Message: fmt.Sprintf(
				"shortcut %q targets %q, but prefix %q is not a configured alias",
				name, target, prefix),
		})
	}
	return diags
}
