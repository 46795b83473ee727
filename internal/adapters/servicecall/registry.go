/*
Package servicecall executes callable descriptors against registered Go
service values. Engines that want descriptors invoked rather than just
resolved register each service under the same fully qualified name the alias
table maps to, then hand descriptors and call arguments to Invoke.

This is deliberately a flat name-to-value map populated by the host, not a
dependency injection container.
*/
package servicecall

import (
	"fmt"
	"reflect"

	"github.com/tmpltools/staticfn/internal/core/domain/callable"
)

// Registry maps fully qualified service names to registered service values.
type Registry struct {
	services map[string]any
}

// NewRegistry creates an empty service registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]any)}
}

// Register binds a service value to a fully qualified name. Registering the
// same name twice is an error; the host wires each service exactly once.
func (r *Registry) Register(target string, service any) error {
	if target == "" {
		return fmt.Errorf("service name cannot be empty")
	}
	if service == nil {
		return fmt.Errorf("service %q cannot be nil", target)
	}
	if _, exists := r.services[target]; exists {
		return fmt.Errorf("service %q is already registered", target)
	}
	r.services[target] = service
	return nil
}

// Has reports whether a service is registered under the given name.
func (r *Registry) Has(target string) bool {
	_, ok := r.services[target]
	return ok
}

/*
Invoke calls the descriptor's method on the registered service with the
given arguments and returns the method's value result.

The descriptor's method segment is translated to the exported Go name
("cache_get" becomes "CacheGet"). Methods may return nothing, one value, one
error, or one value and one error; a trailing non-nil error is returned as
the call's error. Unknown targets, unknown methods, arity mismatches, and
unassignable arguments are all reported as errors.
*/
func (r *Registry) Invoke(d callable.Descriptor, args ...any) (any, error) {
	service, ok := r.services[d.Target]
	if !ok {
		return nil, fmt.Errorf("no service registered for target %q", d.Target)
	}

	methodName := ExportedMethodName(d.Method)
	method := reflect.ValueOf(service).MethodByName(methodName)
	if !method.IsValid() {
		return nil, fmt.Errorf("service %q has no method %q", d.Target, methodName)
	}

	in, err := buildCallArgs(method.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("cannot call %s: %w", d, err)
	}

	return collectResults(d, method.Call(in))
}
