package testutil

import "github.com/tmpltools/staticfn/internal/core/domain/callable"

// MockFunctionResolver is a mock implementation of ports.FunctionResolver.
type MockFunctionResolver struct {
	ResolveFunc    func(name string) (callable.Descriptor, bool)
	SetAliasesFunc func(aliases map[string]string)

	// ResolveCalls records every name passed to Resolve, in order.
	ResolveCalls []string
}

func (m *MockFunctionResolver) Resolve(name string) (callable.Descriptor, bool) {
	m.ResolveCalls = append(m.ResolveCalls, name)
	if m.ResolveFunc != nil {
		return m.ResolveFunc(name)
	}
	return callable.Descriptor{}, false // Default: nothing resolves.
}

func (m *MockFunctionResolver) SetAliases(aliases map[string]string) {
	if m.SetAliasesFunc != nil {
		m.SetAliasesFunc(aliases)
	}
}
