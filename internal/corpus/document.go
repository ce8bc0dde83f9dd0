package corpus

import "fmt"

// EDU is one elementary discourse unit: a contiguous span of document text.
type EDU struct {
	Doc   string // name of the owning document
	Num   int    // 1-based position within the document
	Text  string
	Start int // character offset of the span within the document text
	End   int
}

// Identifier returns a corpus-unique identifier for the EDU.
func (e EDU) Identifier() string {
	return fmt.Sprintf("%s_%d", e.Doc, e.Num)
}

// Relation is one directed attachment between two EDUs of a document.
type Relation struct {
	Src   int // 1-based EDU number
	Dst   int
	Label string
}

// Document is one corpus document: its EDUs in textual order plus any
// annotated attachment relations.
type Document struct {
	Name      string
	EDUs      []EDU
	Relations []Relation
}

// RelationMap flattens the relation list into a lookup from (src, dst) EDU
// numbers to the relation label.
func (d *Document) RelationMap() map[[2]int]string {
	m := make(map[[2]int]string, len(d.Relations))
	for _, rel := range d.Relations {
		m[[2]int{rel.Src, rel.Dst}] = rel.Label
	}
	return m
}
