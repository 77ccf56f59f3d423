package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	natalie "github.com/kddnewton/natalie"
)

// manifest describes the classes and modules a demo run should
// pre-register before driving any calls, loaded from a YAML document. This
// plays the role zephyrtronium/iolang's addon.yaml manifests play for its
// code-generation command, adapted here into a runtime bootstrap file
// instead of a build-time one.
type manifest struct {
	Classes []classSpec `yaml:"classes"`
	Modules []string    `yaml:"modules"`
}

type classSpec struct {
	Name     string   `yaml:"name"`
	Super    string   `yaml:"super"`
	Includes []string `yaml:"includes"`
}

// loadManifest reads and parses a bootstrap manifest from path.
func loadManifest(path string) (*manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var m manifest
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}

// apply registers every class and module in m against rt, resolving
// superclass and include references by name. It returns the registered
// classes and modules keyed by name, so the caller can wire native methods
// onto them afterward.
func (m *manifest) apply(rt *natalie.Runtime) map[string]*natalie.Class {
	registry := map[string]*natalie.Class{
		"Object": rt.ObjectClass,
	}

	for _, mod := range m.Modules {
		registry[mod] = rt.NewModule(mod)
	}

	for _, c := range m.Classes {
		super := registry["Object"]
		if c.Super != "" {
			if s, ok := registry[c.Super]; ok {
				super = s
			}
		}
		klass := rt.NewClass(c.Name, super)
		registry[c.Name] = klass
	}

	for _, c := range m.Classes {
		klass := registry[c.Name]
		for _, inc := range c.Includes {
			if mod, ok := registry[inc]; ok {
				klass.IncludeModule(mod)
			}
		}
	}

	return registry
}
