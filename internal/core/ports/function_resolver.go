package ports

import "github.com/tmpltools/staticfn/internal/core/domain/callable"

/*
FunctionResolver defines the contract for resolving a template function name
to an aliased service method. This is the handler a template engine invokes
from its unknown-function extension point, so its shape must stay a plain
name-in, descriptor-out call.
*/
type FunctionResolver interface {
	/*
	   Resolve maps a function name written in a template, e.g. "auth_check",
	   to a callable descriptor. It returns the descriptor and true on
	   success, or a zero descriptor and false when the name does not follow
	   the prefix_method convention or its prefix is not a configured alias.
	*/
	Resolve(name string) (callable.Descriptor, bool)

	// SetAliases replaces the alias table. Entries already memoized from the
	// previous table keep serving their cached descriptors.
	SetAliases(aliases map[string]string)
}
