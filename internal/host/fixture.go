package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes a reference Registry to load from YAML: a flat set of
// native type names, which of them are templatizable, and a set of
// top-level scope bindings by name to a native type name. Mirrors
// eval_harness.LoadSpec's "read file, unmarshal, validate required fields"
// shape, adapted to build a host.Registry/Scope pair instead of a benchmark
// spec.
type Fixture struct {
	Natives       []string          `yaml:"natives"`
	Templatizable []string          `yaml:"templatizable"`
	Scope         map[string]string `yaml:"scope"`
}

// LoadFixture reads a Fixture from a YAML file and builds the Registry and
// root Scope it describes.
func LoadFixture(path string) (*Registry, *Scope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read fixture file: %w", err)
	}

	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, nil, fmt.Errorf("parse fixture YAML: %w", err)
	}
	return fx.Build()
}

// Build constructs a Registry and root Scope from the fixture description.
func (fx *Fixture) Build() (*Registry, *Scope, error) {
	reg := NewRegistry()
	for _, name := range fx.Natives {
		reg.WithNative(name, &Native{Name: name})
	}
	for _, name := range fx.Templatizable {
		reg.WithTemplatizable(name)
	}

	scope := NewScope()
	for name, nativeName := range fx.Scope {
		t, ok := reg.named[nativeName]
		if !ok {
			return nil, nil, fmt.Errorf("scope binding %q refers to unknown native type %q", name, nativeName)
		}
		scope = scope.Extend(name, t)
	}

	return reg, scope, nil
}
