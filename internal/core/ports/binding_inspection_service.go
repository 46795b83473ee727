package ports

import (
	"github.com/tmpltools/staticfn/internal/core/domain/binding"
	"github.com/tmpltools/staticfn/internal/core/domain/callable"
)

// ResolutionTrace records the steps taken while resolving one function name.
type ResolutionTrace struct {
	Input       string // The name as written in the template.
	Substituted string // The name after one shortcut pass; equals Input if no shortcut applied.
	Prefix      string // First underscore segment, empty if the name did not parse.
	Method      string // Remaining segments rejoined with "_", empty if the name did not parse.
	Resolved    bool
	Descriptor  callable.Descriptor // Zero unless Resolved.
	Reason      string              // Human-readable explanation when not resolved.
}

// Diagnostic severity levels reported by CheckBindings.
const (
	DiagnosticError   = "error"
	DiagnosticWarning = "warning"
)

// Diagnostic describes one problem found in the configured binding tables.
type Diagnostic struct {
	Level   string
	Message string
}

// BindingInspectionService defines the contract for examining the configured
// binding tables and explaining how individual names resolve against them.
type BindingInspectionService interface {
	// ListBindings returns the alias and shortcut tables as loaded from the
	// provider, with keys normalized the same way the resolver normalizes them.
	ListBindings() (binding.Set, error)

	// Explain resolves a single name and reports every intermediate step.
	Explain(name string) ResolutionTrace

	// CheckBindings inspects the configured tables for entries that can never
	// resolve or that rely on behavior the resolver does not provide.
	CheckBindings() ([]Diagnostic, error)
}
