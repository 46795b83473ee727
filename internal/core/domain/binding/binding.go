/*
Package binding defines core domain entities for the configured alias and
shortcut tables.
*/
package binding

import "strings"

/*
Set holds the two configuration-sourced tables a resolver is built from.

Aliases maps a short prefix to a fully qualified service name, e.g.
"auth" -> "myapp/auth.Guard". Shortcuts maps an alternate call name to the
canonical call name it should be rewritten to before resolution, e.g.
"log" -> "logger_write". Keys in both tables are matched case-insensitively.
*/
type Set struct {
	Aliases   map[string]string `yaml:"aliases"`
	Shortcuts map[string]string `yaml:"shortcuts"`
}

// IsEmpty reports whether the set carries no bindings at all.
func (s Set) IsEmpty() bool {
	return len(s.Aliases) == 0 && len(s.Shortcuts) == 0
}

/*
Normalized returns a copy of the set with alias keys, shortcut keys, and
shortcut values lower-cased. Shortcut values are function names themselves,
so they receive the same normalization as incoming call names. Alias values
are fully qualified service names and are left untouched. Nil tables become
empty maps, so callers never have to nil-check before lookups.
*/
func (s Set) Normalized() Set {
	out := Set{
		Aliases:   make(map[string]string, len(s.Aliases)),
		Shortcuts: make(map[string]string, len(s.Shortcuts)),
	}
	for k, v := range s.Aliases {
		out.Aliases[strings.ToLower(k)] = v
	}
	for k, v := range s.Shortcuts {
		out.Shortcuts[strings.ToLower(k)] = strings.ToLower(v)
	}
	return out
}
