package testutil

import "github.com/tmpltools/staticfn/internal/core/domain/binding"

// MockBindingProvider is a mock implementation of ports.BindingProvider.
type MockBindingProvider struct {
	GetBindingsFunc func() (binding.Set, error)
}

func (m *MockBindingProvider) GetBindings() (binding.Set, error) {
	if m.GetBindingsFunc != nil {
		return m.GetBindingsFunc()
	}
	return binding.Set{}, nil // Default: no bindings configured.
}
