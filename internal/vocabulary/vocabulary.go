// Package vocabulary maps feature names to the contiguous indices a sparse
// learning format needs, and reads/writes the mapping as a tab-separated
// file. Indices are zero-based in memory and one-based on disk, matching the
// libsvm convention.
package vocabulary

// Vocabulary assigns each distinct feature name a stable, contiguous index
// in first-seen order.
type Vocabulary struct {
	index map[string]int
	names []string
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// Intern returns the index for name, assigning the next free index on first
// sight.
func (v *Vocabulary) Intern(name string) int {
	if idx, ok := v.index[name]; ok {
		return idx
	}
	idx := len(v.names)
	v.index[name] = idx
	v.names = append(v.names, name)
	return idx
}

// Lookup returns the index for name without assigning one.
func (v *Vocabulary) Lookup(name string) (int, bool) {
	idx, ok := v.index[name]
	return idx, ok
}

// Len reports the number of distinct feature names.
func (v *Vocabulary) Len() int { return len(v.names) }

// Names returns the feature names in index order. The returned slice is a
// copy.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}
