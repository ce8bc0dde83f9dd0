package features

import (
	"fmt"

	"discern/internal/corpus"
)

// Kind classifies how a feature enters the learning vocabulary.
type Kind int

const (
	// Discrete features one-hot into the vocabulary as "name=value".
	Discrete Kind = iota
	// Continuous features carry their magnitude under the bare name.
	Continuous
)

// Key names one feature and documents what it computes.
type Key struct {
	Name string
	Help string
	Kind Kind
}

// Value is one computed feature value.
type Value struct {
	Key  Key
	Text string  // set for discrete features
	Num  float64 // set for continuous features
}

// VocabName returns the vocabulary entry this value interns under.
func (v Value) VocabName() string {
	if v.Key.Kind == Discrete {
		return v.Key.Name + "=" + v.Text
	}
	return v.Key.Name
}

// Magnitude returns the sparse-vector weight of this value: 1 for a one-hot
// discrete feature, the raw number for a continuous one.
func (v Value) Magnitude() float64 {
	if v.Key.Kind == Discrete {
		return 1
	}
	return v.Num
}

func (v Value) String() string {
	if v.Key.Kind == Discrete {
		return fmt.Sprintf("%s=%s", v.Key.Name, v.Text)
	}
	return fmt.Sprintf("%s=%g", v.Key.Name, v.Num)
}

// SingleFeature computes one feature of a single EDU within its document.
type SingleFeature struct {
	Key Key
	Fn  func(doc *corpus.Document, edu corpus.EDU) Value
}

// PairFeature computes one feature of an ordered EDU pair.
type PairFeature struct {
	Key Key
	Fn  func(doc *corpus.Document, edu1, edu2 corpus.EDU) Value
}

// suffixed renames a value's key, used to distinguish the two EDUs of a pair.
func suffixed(v Value, suffix string) Value {
	v.Key.Name += suffix
	return v
}
