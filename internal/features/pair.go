package features

import (
	"discern/internal/corpus"
)

// PairFeatures are the features computed over the combined context of an
// ordered EDU pair. The owning document is pair metadata (PairVector.Doc),
// not a learnable feature.
var PairFeatures = []PairFeature{
	{
		Key: Key{Name: "num_edus_between", Help: "number of EDUs between the two EDUs", Kind: Continuous},
		Fn: func(_ *corpus.Document, edu1, edu2 corpus.EDU) Value {
			gap := edu2.Num - edu1.Num
			if gap < 0 {
				gap = -gap
			}
			return Value{Key: Key{Name: "num_edus_between", Kind: Continuous}, Num: float64(gap - 1)}
		},
	},
}
