/*
Package inspection implements the service behind the CLI: it lists the
configured binding tables, explains how individual names resolve, and checks
the tables for entries that can never work.
*/
package inspection

import (
	"fmt"
	"strings"

	"github.com/tmpltools/staticfn/internal/core/domain/binding"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"github.com/tmpltools/staticfn/internal/core/services/resolution"
)

type service struct {
	provider ports.BindingProvider
	resolver ports.FunctionResolver
}

// NewService creates a new binding inspection service.
// It panics if provider or resolver is nil.
func NewService(bp ports.BindingProvider, fr ports.FunctionResolver) ports.BindingInspectionService {
	if bp == nil {
		panic("bindingProvider cannot be nil")
	}
	if fr == nil {
		panic("functionResolver cannot be nil")
	}
	return &service{provider: bp, resolver: fr}
}

// ListBindings loads the binding tables from the provider and returns them
// normalized the way the resolver sees them.
func (s *service) ListBindings() (binding.Set, error) {
	set, err := s.provider.GetBindings()
	if err != nil {
		return binding.Set{}, fmt.Errorf("failed to load bindings: %w", err)
	}
	return set.Normalized(), nil
}

// Explain resolves one name and records every intermediate step. Provider
// failures are reported through the trace's Reason rather than an error, so
// the trace is always printable.
func (s *service) Explain(name string) ports.ResolutionTrace {
	trace := ports.ResolutionTrace{Input: name}

	key := strings.ToLower(name)
	trace.Substituted = key

	set, err := s.ListBindings()
	if err != nil {
		trace.Reason = fmt.Sprintf("could not load bindings: %v", err)
		return trace
	}

	if target, ok := set.Shortcuts[key]; ok {
		key = target
		trace.Substituted = key
	}

	prefix, method, ok := resolution.SplitName(key)
	if !ok {
		trace.Reason = "name does not split into a prefix and a method segment"
		return trace
	}
	trace.Prefix = prefix
	trace.Method = method

	descriptor, ok := s.resolver.Resolve(name)
	if !ok {
		trace.Reason = fmt.Sprintf("prefix %q is not a configured alias", prefix)
		return trace
	}

	trace.Resolved = true
	trace.Descriptor = descriptor
	return trace
}

// CheckBindings inspects the configured tables and reports entries that can
// never resolve, plus shortcuts that rely on behavior the resolver does not
// provide (a second substitution pass).
func (s *service) CheckBindings() ([]ports.Diagnostic, error) {
	set, err := s.ListBindings()
	if err != nil {
		return nil, err
	}

	diagnostics := []ports.Diagnostic{}
	for _, name := range sortedKeys(set.Aliases) {
		diagnostics = append(diagnostics, checkAlias(name, set.Aliases[name])...)
	}
	for _, name := range sortedKeys(set.Shortcuts) {
		diagnostics = append(diagnostics, checkShortcut(name, set.Shortcuts[name], set)...)
	}
	return diagnostics, nil
}
