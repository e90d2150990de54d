package variant

import (
	"fmt"
	"strings"

	fcerrors "github.com/alexisbeaulieu97/fluidcss/pkg/errors"
)

// Registry is a read-only lookup table of output flavors.
type Registry struct {
	order []string
	byKey map[string]Descriptor
}

// NewRegistry builds a registry from descriptors, keeping their order.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if strings.TrimSpace(d.Key) == "" {
			return nil, fmt.Errorf("variant descriptor %q has no key", d.DisplayName)
		}
		if d.Comment == nil || len(d.Sections) == 0 {
			return nil, fmt.Errorf("variant %q must define a comment style and at least one section", d.Key)
		}
		for i, s := range d.Sections {
			if s.Render == nil {
				return nil, fmt.Errorf("variant %q section %d has no renderer", d.Key, i)
			}
		}
		if _, exists := r.byKey[d.Key]; exists {
			return nil, fmt.Errorf("variant %q already registered", d.Key)
		}
		r.byKey[d.Key] = d
		r.order = append(r.order, d.Key)
	}
	return r, nil
}

var defaultRegistry = mustRegistry(builtinDescriptors()...)

func mustRegistry(descriptors ...Descriptor) *Registry {
	r, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry of built-in flavors.
func Default() *Registry {
	return defaultRegistry
}

// Lookup resolves a variant key.
func (r *Registry) Lookup(key string) (Descriptor, error) {
	d, ok := r.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w %q (available: %s)", fcerrors.ErrUnknownVariant, key, strings.Join(r.order, ", "))
	}
	return d, nil
}

// Keys lists variant keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}

// Descriptors lists descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}
