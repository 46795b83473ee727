package ports

import "github.com/tmpltools/staticfn/internal/core/domain/binding"

// BindingProvider defines the interface for sourcing alias and shortcut
// tables from configuration, like a YAML file.
type BindingProvider interface {
	// GetBindings loads the alias and shortcut tables from the configured
	// source. A missing source yields an empty set, not an error.
	GetBindings() (binding.Set, error)
}
