package servicecall

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tmpltools/staticfn/internal/core/domain/callable"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ExportedMethodName translates a snake_case method segment to the exported
// Go method name: "check" becomes "Check", "cache_get" becomes "CacheGet".
func ExportedMethodName(method string) string {
	var b strings.Builder
	for _, seg := range strings.Split(method, "_") {
		if seg == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(first))
		b.WriteString(seg[size:])
	}
	return b.String()
}

// buildCallArgs converts call arguments into reflect values matching the
// method's parameter types, handling variadic tails and nil placeholders.
func buildCallArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("wrong number of arguments: got %d, want at least %d", len(args), numIn-1)
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("wrong number of arguments: got %d, want %d", len(args), numIn)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		paramType := paramTypeAt(mt, i)
		value, err := argValue(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = value
	}
	return in, nil
}

// paramTypeAt returns the declared type of the i-th argument, unwrapping the
// slice type for positions covered by a variadic tail.
func paramTypeAt(mt reflect.Type, i int) reflect.Type {
	if mt.IsVariadic() && i >= mt.NumIn()-1 {
		return mt.In(mt.NumIn() - 1).Elem()
	}
	return mt.In(i)
}

// argValue adapts one argument to the parameter type, converting where the
// types allow it (e.g. untyped template numbers arriving as int for a
// float64 parameter).
func argValue(arg any, paramType reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch paramType.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(paramType), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", paramType)
		}
	}

	value := reflect.ValueOf(arg)
	if value.Type().AssignableTo(paramType) {
		return value, nil
	}
	if value.Type().ConvertibleTo(paramType) {
		return value.Convert(paramType), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", value.Type(), paramType)
}

// collectResults maps a method's return values onto the (any, error) shape
// Invoke exposes. Supported shapes: none, one value, one error, or one value
// followed by one error.
func collectResults(d callable.Descriptor, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type().Implements(errorType) {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	case 2:
		if !out[1].Type().Implements(errorType) {
			return nil, fmt.Errorf("unsupported signature for %s: second return value must be an error", d)
		}
		if err := asError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		return nil, fmt.Errorf("unsupported signature for %s: at most two return values are supported", d)
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
