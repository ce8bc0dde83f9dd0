package cli

// Registry is an ordered collection of sub-command descriptors. Insertion
// order is a stated contract: it is the order sub-commands are enumerated in
// help text and configured into the grammar.
//
// The registry performs no validation of its own; name uniqueness is enforced
// by Dispatcher.BuildGrammar, the only place a conflict can be reported with
// both offenders identified. A Registry is meant to be built once at process
// start and treated as read-only afterwards.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry returns a registry holding ds in the given order.
func NewRegistry(ds ...Descriptor) *Registry {
	r := &Registry{}
	for _, d := range ds {
		r.Add(d)
	}
	return r
}

// Add appends a descriptor, preserving insertion order.
func (r *Registry) Add(d Descriptor) {
	r.descriptors = append(r.descriptors, d)
}

// Descriptors returns the descriptors in insertion order. The returned slice
// is a copy; mutating it does not affect the registry.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len reports the number of registered descriptors.
func (r *Registry) Len() int { return len(r.descriptors) }
