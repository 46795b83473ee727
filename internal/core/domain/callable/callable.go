/*
Package callable defines the core domain entity for a resolved call target.
*/
package callable

/*
Descriptor identifies the method a template function call resolves to. Target
is the fully qualified service name taken from the alias table; Method is the
method segment of the call name, with any inner underscores preserved. This is
a core domain entity.
*/
type Descriptor struct {
	Target string
	Method string
}

// String renders the descriptor in "target.method" form for diagnostics.
func (d Descriptor) String() string {
	return d.Target + "." + d.Method
}

// IsZero reports whether the descriptor carries no resolution.
func (d Descriptor) IsZero() bool {
	return d.Target == "" && d.Method == ""
}
