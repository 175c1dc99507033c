package dock

import (
	"fmt"
)

// Registry is the by-name panel directory consulted during restore, plus
// the affinity compatibility rule. It is injectable so tests can populate a
// fake instead of a process-wide singleton.
type Registry interface {
	// Lookup resolves a panel by unique name, or nil if unknown.
	Lookup(name string) *Panel

	// AffinitiesCompatible reports whether two affinity tag lists allow
	// docking together.
	AffinitiesCompatible(a, b []string) bool
}

// MemoryRegistry is the default in-process Registry.
type MemoryRegistry struct {
	panels map[string]*Panel
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{panels: make(map[string]*Panel)}
}

// Register adds a panel. Names are unique; a duplicate is an error.
func (r *MemoryRegistry) Register(p *Panel) error {
	if p == nil || p.Name() == "" {
		return fmt.Errorf("register panel: empty name")
	}
	if _, exists := r.panels[p.Name()]; exists {
		return fmt.Errorf("register panel: name %q already registered", p.Name())
	}
	r.panels[p.Name()] = p
	return nil
}

// Unregister removes a panel by name.
func (r *MemoryRegistry) Unregister(name string) {
	delete(r.panels, name)
}

// Lookup resolves a panel by name.
func (r *MemoryRegistry) Lookup(name string) *Panel {
	return r.panels[name]
}

// AffinitiesCompatible reports whether the two tag lists are compatible:
// both empty, or sharing at least one tag.
func (r *MemoryRegistry) AffinitiesCompatible(a, b []string) bool {
	a = cleanAffinities(a)
	b = cleanAffinities(b)
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	for _, tag := range a {
		for _, other := range b {
			if tag == other {
				return true
			}
		}
	}
	return false
}
