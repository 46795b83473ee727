package servicecall

import (
	"errors"
	"strings"
	"testing"

	"github.com/tmpltools/staticfn/internal/core/domain/callable"
)

// guard is a test service mirroring the kind of value a host registers.
type guard struct {
	loggedIn bool
}

func (g *guard) Check() bool { return g.loggedIn }

func (g *guard) UserName(prefix string) string { return prefix + ":anna" }

func (g *guard) CacheGet(key string) (string, error) {
	if key == "" {
		return "", errors.New("empty cache key")
	}
	return "value-for-" + key, nil
}

func (g *guard) Join(sep string, parts ...string) string {
	return strings.Join(parts, sep)
}

func (g *guard) Scale(factor float64) float64 { return factor * 2 }

func (g *guard) TooMany() (int, int, int) { return 1, 2, 3 }

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := registry.Register("myapp/auth.Guard", &guard{loggedIn: true}); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	return registry
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("myapp/auth.Guard", &guard{}); err != nil {
		t.Fatalf("Register() unexpected error = %v", err)
	}
	if !registry.Has("myapp/auth.Guard") {
		t.Error("Has() = false after successful Register()")
	}

	t.Run("duplicate name rejected", func(t *testing.T) {
		if err := registry.Register("myapp/auth.Guard", &guard{}); err == nil {
			t.Error("Register() of a duplicate name expected error, got nil")
		}
	})
	t.Run("empty name rejected", func(t *testing.T) {
		if err := registry.Register("", &guard{}); err == nil {
			t.Error("Register(\"\") expected error, got nil")
		}
	})
	t.Run("nil service rejected", func(t *testing.T) {
		if err := registry.Register("myapp/log.Writer", nil); err == nil {
			t.Error("Register(nil service) expected error, got nil")
		}
	})
}

func TestRegistry_Invoke(t *testing.T) {
	tests := []struct {
		name                string
		descriptor          callable.Descriptor
		args                []any
		want                any
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:       "no-argument method",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "check"},
			want:       true,
		},
		{
			name:       "single argument method",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "user_name"},
			args:       []any{"acct"},
			want:       "acct:anna",
		},
		{
			name:       "snake_case method segment maps to exported name",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "cache_get"},
			args:       []any{"session"},
			want:       "value-for-session",
		},
		{
			name:       "variadic method",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "join"},
			args:       []any{"-", "a", "b", "c"},
			want:       "a-b-c",
		},
		{
			name:       "variadic method with empty tail",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "join"},
			args:       []any{"-"},
			want:       "",
		},
		{
			name:       "convertible argument",
			descriptor: callable.Descriptor{Target: "myapp/auth.Guard", Method: "scale"},
			args:       []any{3}, // int converted to the float64 parameter
			want:       float64(6),
		},
		{
			name:                "method error is propagated",
			descriptor:          callable.Descriptor{Target: "myapp/auth.Guard", Method: "cache_get"},
			args:                []any{""},
			wantErr:             true,
			wantErrorMsgSnippet: "empty cache key",
		},
		{
			name:                "unknown target",
			descriptor:          callable.Descriptor{Target: "myapp/log.Writer", Method: "write"},
			wantErr:             true,
			wantErrorMsgSnippet: "no service registered",
		},
		{
			name:                "unknown method",
			descriptor:          callable.Descriptor{Target: "myapp/auth.Guard", Method: "missing"},
			wantErr:             true,
			wantErrorMsgSnippet: `no method "Missing"`,
		},
		{
			name:                "too few arguments",
			descriptor:          callable.Descriptor{Target: "myapp/auth.Guard", Method: "user_name"},
			wantErr:             true,
			wantErrorMsgSnippet: "wrong number of arguments",
		},
		{
			name:                "unassignable argument",
			descriptor:          callable.Descriptor{Target: "myapp/auth.Guard", Method: "user_name"},
			args:                []any{struct{}{}},
			wantErr:             true,
			wantErrorMsgSnippet: "not assignable",
		},
		{
			name:                "unsupported signature",
			descriptor:          callable.Descriptor{Target: "myapp/auth.Guard", Method: "too_many"},
			wantErr:             true,
			wantErrorMsgSnippet: "unsupported signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newTestRegistry(t)

			got, err := registry.Invoke(tt.descriptor, tt.args...)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Invoke() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("Invoke() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Invoke() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestExportedMethodName(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{method: "check", want: "Check"},
		{method: "cache_get", want: "CacheGet"},
		{method: "to_route_name", want: "ToRouteName"},
		{method: "already_Upper", want: "AlreadyUpper"},
		{method: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			if got := ExportedMethodName(tt.method); got != tt.want {
				t.Errorf("ExportedMethodName(%q) = %q, want %q", tt.method, got, tt.want)
			}
		})
	}
}
