package stack

type (
	// Registry is the fixed, ordered catalogue of module descriptors for one
	// stack. Registration order is preserved for deterministic iteration and
	// reporting; construction order is decided by the wirer from the
	// declared edges, not by registration order.
	Registry struct {
		order       []string
		descriptors map[string]*Descriptor
	}
)

func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]*Descriptor),
	}
}

// Register adds a descriptor to the catalogue. Registering the same module
// name twice is an error.
func (r *Registry) Register(d *Descriptor) error {
	if _, ok := r.descriptors[d.Name]; ok {
		return &DuplicateModuleError{Module: d.Name}
	}
	r.descriptors[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get looks up a descriptor by module name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	d, ok := r.descriptors[name]
	return d, ok
}

// Descriptors returns the catalogue in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.descriptors[name])
	}
	return out
}
