// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/scrolls/internal/platform/apperr"
)

// Registry holds the validated variants a run can choose from.
type Registry struct {
	variants map[string]*Variant
}

// variantFile is the on-disk layout of a variants YAML file.
type variantFile struct {
	Variants []*Variant `yaml:"variants"`
}

// NewRegistry returns a registry holding the built-in variants.
func NewRegistry() *Registry {
	registry := &Registry{variants: make(map[string]*Variant)}
	for _, variant := range []*Variant{Catalogue(), Inventory()} {
		if err := registry.Register(variant); err != nil {
			panic(fmt.Sprintf("record: built-in variant %s: %v", variant.Name, err))
		}
	}
	return registry
}

// Register validates variant and adds it, replacing any variant of the same name.
func (r *Registry) Register(variant *Variant) error {
	if err := variant.Validate(); err != nil {
		return err
	}
	r.variants[variant.Name] = variant
	return nil
}

// LoadFile registers every variant declared in a YAML file. Unknown keys are
// rejected so a typo cannot silently drop a column.
func (r *Registry) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open variants file: %w", err)
	}
	defer file.Close()

	return r.Load(file)
}

// Load registers every variant declared in the YAML document read from src.
func (r *Registry) Load(src io.Reader) error {
	decoder := yaml.NewDecoder(src)
	decoder.KnownFields(true)

	var doc variantFile
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return apperr.ValidationError("variants file: " + err.Error())
	}

	for i, variant := range doc.Variants {
		if variant == nil {
			return apperr.ValidationError(fmt.Sprintf("variants[%d] is empty", i))
		}
		if err := r.Register(variant); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the variant called name.
func (r *Registry) Lookup(name string) (*Variant, error) {
	variant, ok := r.variants[name]
	if !ok {
		return nil, apperr.NotFound("Schema variant " + name)
	}
	return variant, nil
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
