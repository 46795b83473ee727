package aliasconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tmpltools/staticfn/internal/core/domain/binding"
	"github.com/tmpltools/staticfn/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the BindingProvider interface by reading alias and
// shortcut tables from a YAML file:
//
//	aliases:
//	  auth: myapp/auth.Guard
//	shortcuts:
//	  log: logger_write
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the binding tables.
func NewYAMLProvider(filePath string) (ports.BindingProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetBindings reads and parses the binding tables from the configured YAML
// file. A missing or empty file yields an empty set and no error; the host
// simply has no bindings configured. Unknown top-level keys are rejected so
// a typo like "alias:" surfaces instead of silently loading nothing.
func (p *YAMLProvider) GetBindings() (binding.Set, error) {
	var set binding.Set

	raw, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return set, fmt.Errorf("failed to read bindings file %s: %w", p.filePath, err)
	}

	if len(raw) == 0 {
		return set, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&set); err != nil {
		// A file holding only comments or "---" decodes to EOF; treat it
		// like an empty file.
		if errors.Is(err, io.EOF) {
			return binding.Set{}, nil
		}
		return binding.Set{}, fmt.Errorf("failed to unmarshal bindings from %s: %w", p.filePath, err)
	}

	return set, nil
}
