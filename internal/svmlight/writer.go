// Package svmlight writes sparse feature vectors in the svmlight/libsvm
// text format: one vector per line, a label followed by index:value pairs
// with one-based indices in ascending order.
package svmlight

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Entry is one sparse-vector component. Index is zero-based; the writer
// emits it one-based.
type Entry struct {
	Index int
	Value float64
}

// Writer emits vectors to an underlying stream. Call Flush when done.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// Encode writes one vector, with an optional trailing # comment for
// provenance. Entries are sorted by index; a duplicate index is an error
// because the format forbids repeated features.
func (w *Writer) Encode(label string, entries []Entry, comment string) error {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	if _, err := w.bw.WriteString(label); err != nil {
		return err
	}
	prev := -1
	for _, e := range sorted {
		if e.Index == prev {
			return fmt.Errorf("svmlight: duplicate feature index %d", e.Index+1)
		}
		prev = e.Index
		if _, err := fmt.Fprintf(w.bw, " %d:%s", e.Index+1, strconv.FormatFloat(e.Value, 'g', -1, 64)); err != nil {
			return err
		}
	}
	if comment != "" {
		if _, err := fmt.Fprintf(w.bw, " # %s", comment); err != nil {
			return err
		}
	}
	return w.bw.WriteByte('\n')
}

// Comment writes a # comment line, conventionally used for provenance.
func (w *Writer) Comment(text string) error {
	_, err := fmt.Fprintf(w.bw, "# %s\n", text)
	return err
}

// Flush writes any buffered output to the underlying stream.
func (w *Writer) Flush() error { return w.bw.Flush() }
