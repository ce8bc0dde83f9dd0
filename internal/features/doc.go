// Package features computes learning feature vectors over discourse corpora.
//
// Features come in two families: single-EDU features (properties of one unit
// of text) and pair features (properties of an ordered EDU pair). The
// Extractor enumerates every ordered pair of distinct EDUs in a document,
// attaches both EDUs' single features under _EDU1/_EDU2 suffixes, and labels
// the pair with its annotated relation or "UNRELATED".
package features
