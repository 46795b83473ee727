/*
Package templatehook wires a function resolver into a template engine's
unknown-function extension point. The engine itself stays a black box: it
only has to expose a way to register one callback that receives a function
name and answers with a callable descriptor or "not handled".
*/
package templatehook

import (
	"fmt"

	"github.com/tmpltools/staticfn/internal/core/domain/callable"
	"github.com/tmpltools/staticfn/internal/core/ports"
)

// Handler is the callback shape an engine invokes for a function name it
// could not resolve through its own registries. Returning false tells the
// engine to continue with its normal unresolved-call error path.
type Handler func(name string) (callable.Descriptor, bool)

// Engine is the subset of a template engine's API this adapter needs:
// a single registration point for the unknown-function callback.
type Engine interface {
	OnUnknownFunction(h Handler)
}

// Install registers exactly one hook on the engine that delegates every
// unresolved function name to the resolver.
func Install(engine Engine, resolver ports.FunctionResolver) error {
	if engine == nil {
		return fmt.Errorf("engine cannot be nil")
	}
	if resolver == nil {
		return fmt.Errorf("resolver cannot be nil")
	}
	engine.OnUnknownFunction(resolver.Resolve)
	return nil
}
