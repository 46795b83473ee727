package aliasconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tmpltools/staticfn/internal/core/domain/binding"
)

func TestNewYAMLProvider(t *testing.T) {
	t.Run("should return a provider for a non-empty path", func(t *testing.T) {
		provider, err := NewYAMLProvider("bindings.yaml")
		if err != nil {
			t.Errorf("NewYAMLProvider() unexpected error = %v", err)
		}
		if provider == nil {
			t.Fatal("NewYAMLProvider() expected non-nil provider, got nil")
		}
		if _, ok := provider.(*YAMLProvider); !ok {
			t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
		}
	})

	t.Run("should reject an empty path", func(t *testing.T) {
		if _, err := NewYAMLProvider(""); err == nil {
			t.Error("NewYAMLProvider(\"\") expected error, got nil")
		}
	})
}

func TestYAMLProvider_GetBindings(t *testing.T) {
	validYAML := `
aliases:
  auth: myapp/auth.Guard
  url: myapp/routing.URLGenerator
shortcuts:
  log: logger_write
`
	expectedValid := binding.Set{
		Aliases: map[string]string{
			"auth": "myapp/auth.Guard",
			"url":  "myapp/routing.URLGenerator",
		},
		Shortcuts: map[string]string{
			"log": "logger_write",
		},
	}

	tests := []struct {
		name                string
		content             *string // nil means the file is not created at all
		want                binding.Set
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{
			name:    "missing file yields empty set",
			content: nil,
			want:    binding.Set{},
		},
		{
			name:    "empty file yields empty set",
			content: strPtr(""),
			want:    binding.Set{},
		},
		{
			name:    "file with only comments yields empty set",
			content: strPtr("# no bindings yet\n"),
			want:    binding.Set{},
		},
		{
			name:    "valid tables",
			content: strPtr(validYAML),
			want:    expectedValid,
		},
		{
			name:    "aliases only",
			content: strPtr("aliases:\n  auth: myapp/auth.Guard\n"),
			want:    binding.Set{Aliases: map[string]string{"auth": "myapp/auth.Guard"}},
		},
		{
			name:                "unknown top-level key is rejected",
			content:             strPtr("alias:\n  auth: myapp/auth.Guard\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal bindings",
		},
		{
			name:                "non-mapping document is rejected",
			content:             strPtr("- auth\n- url\n"),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal bindings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bindings.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o600); err != nil {
					t.Fatalf("failed to write test fixture: %v", err)
				}
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			got, err := provider.GetBindings()

			if (err != nil) != tt.wantErr {
				t.Fatalf("GetBindings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetBindings() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetBindings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
