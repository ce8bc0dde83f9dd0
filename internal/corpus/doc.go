// Package corpus defines the discourse corpus data model and a reader for
// on-disk corpora.
//
// A corpus is a directory of documents. Each document is a <name>.edus file
// holding one elementary discourse unit (EDU) per line, optionally paired
// with a <name>.rels file listing attachment relations between EDUs as
// tab-separated src/dst/label triples with 1-based EDU numbers.
package corpus
