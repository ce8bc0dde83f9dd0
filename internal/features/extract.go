package features

import (
	"discern/internal/corpus"
)

// UnrelatedLabel marks a pair with no annotated relation.
const UnrelatedLabel = "UNRELATED"

// PairVector is one extracted EDU pair: its location in the corpus, its
// feature values, and (outside live mode) its attachment label.
type PairVector struct {
	Doc      string
	Src, Dst int // 1-based EDU numbers
	Values   []Value

	// Label is the annotated relation, UnrelatedLabel when none holds, and
	// empty in live mode.
	Label string
	// Attached reports whether any relation holds between the pair. Always
	// false in live mode.
	Attached bool
}

// Extractor walks documents and produces labelled pair vectors.
type Extractor struct {
	// Live extracts unlabelled vectors for decoding against a model, in
	// which case annotations are ignored.
	Live bool
}

// Document extracts one vector for every ordered pair of distinct EDUs in
// doc, in (src, dst) order.
func (x *Extractor) Document(doc *corpus.Document) []PairVector {
	var relations map[[2]int]string
	if !x.Live {
		relations = doc.RelationMap()
	}

	// Single-EDU features are shared across every pair the EDU takes part
	// in, so compute them once per EDU.
	cache := make(map[int][]Value, len(doc.EDUs))
	for _, edu := range doc.EDUs {
		vals := make([]Value, 0, len(SingleFeatures))
		for _, f := range SingleFeatures {
			vals = append(vals, f.Fn(doc, edu))
		}
		cache[edu.Num] = vals
	}

	var out []PairVector
	for _, edu1 := range doc.EDUs {
		for _, edu2 := range doc.EDUs {
			if edu1.Num == edu2.Num {
				continue
			}
			vec := PairVector{Doc: doc.Name, Src: edu1.Num, Dst: edu2.Num}
			for _, f := range PairFeatures {
				vec.Values = append(vec.Values, f.Fn(doc, edu1, edu2))
			}
			for _, v := range cache[edu1.Num] {
				vec.Values = append(vec.Values, suffixed(v, "_EDU1"))
			}
			for _, v := range cache[edu2.Num] {
				vec.Values = append(vec.Values, suffixed(v, "_EDU2"))
			}
			if !x.Live {
				label, ok := relations[[2]int{edu1.Num, edu2.Num}]
				if !ok {
					label = UnrelatedLabel
				}
				vec.Label = label
				vec.Attached = ok
			}
			out = append(out, vec)
		}
	}
	return out
}

// Inspect computes an EDU's meta and single features for display.
func Inspect(doc *corpus.Document, edu corpus.EDU) []Value {
	var vals []Value
	for _, f := range MetaFeatures {
		vals = append(vals, f.Fn(doc, edu))
	}
	for _, f := range SingleFeatures {
		vals = append(vals, f.Fn(doc, edu))
	}
	return vals
}
