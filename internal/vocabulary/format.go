package vocabulary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Dump writes the vocabulary as name<TAB>index lines ordered by index.
// Feature indices in libsvm files are one-based, so on-disk indices are the
// in-memory index plus one.
func Dump(w io.Writer, v *Vocabulary) error {
	bw := bufio.NewWriter(w)
	for i, name := range v.names {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", name, i+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DumpFile writes the vocabulary to path via a temp file then rename.
func DumpFile(path string, v *Vocabulary) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := Dump(f, v); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a dumped vocabulary, restoring zero-based in-memory indices.
// Entries may appear in any order but must form a contiguous one-based
// sequence with no duplicate names.
func Load(r io.Reader) (*Vocabulary, error) {
	type entry struct {
		name string
		idx  int
	}
	var entries []entry

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, idxText, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("vocabulary line %d: want name<TAB>index, got %q", lineno, line)
		}
		idx, err := strconv.Atoi(idxText)
		if err != nil {
			return nil, fmt.Errorf("vocabulary line %d: bad index %q: %w", lineno, idxText, err)
		}
		if idx < 1 {
			return nil, fmt.Errorf("vocabulary line %d: index %d is not one-based", lineno, idx)
		}
		entries = append(entries, entry{name: name, idx: idx})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })
	v := New()
	for i, e := range entries {
		if e.idx != i+1 {
			return nil, fmt.Errorf("vocabulary indices are not contiguous at index %d", e.idx)
		}
		if _, dup := v.Lookup(e.name); dup {
			return nil, fmt.Errorf("vocabulary name %q appears twice", e.name)
		}
		v.Intern(e.name)
	}
	return v, nil
}

// LoadFile reads a dumped vocabulary from path.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
