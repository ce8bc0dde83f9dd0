package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"discern/internal/xlog"
)

const (
	eduSuffix = ".edus"
	relSuffix = ".rels"
)

// Reader loads documents from a corpus directory.
type Reader struct {
	dir string
}

// NewReader returns a reader over the corpus rooted at dir.
func NewReader(dir string) *Reader { return &Reader{dir: dir} }

// Files lists the corpus's document files (.edus paths) in name order.
func (r *Reader) Files() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list corpus %s: %w", r.dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), eduSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(r.dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Filter keeps the document paths whose document name satisfies keep.
func (r *Reader) Filter(paths []string, keep func(name string) bool) []string {
	var out []string
	for _, p := range paths {
		if keep(DocName(p)) {
			out = append(out, p)
		}
	}
	return out
}

// Slurp loads every listed document, reading concurrently but returning the
// documents in the order of paths.
func (r *Reader) Slurp(ctx context.Context, paths []string) ([]*Document, error) {
	logger := xlog.Get("corpus")
	docs := make([]*Document, len(paths))

	grp, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := LoadDocument(path)
			if err != nil {
				return err
			}
			logger.Debugf("loaded %s (%d EDUs, %d relations)", doc.Name, len(doc.EDUs), len(doc.Relations))
			docs[i] = doc
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// DocName derives the document name from a .edus path.
func DocName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), eduSuffix)
}

// LoadDocument parses one document from its .edus file and, when present,
// the sibling .rels file.
func LoadDocument(path string) (*Document, error) {
	name := DocName(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer f.Close()

	doc := &Document{Name: name}
	offset := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		doc.EDUs = append(doc.EDUs, EDU{
			Doc:   name,
			Num:   len(doc.EDUs) + 1,
			Text:  line,
			Start: offset,
			End:   offset + len(line),
		})
		offset += len(line) + 1 // count the newline
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}

	rels, err := loadRelations(strings.TrimSuffix(path, eduSuffix)+relSuffix, len(doc.EDUs))
	if err != nil {
		return nil, err
	}
	doc.Relations = rels
	return doc, nil
}

// loadRelations parses a .rels file; a missing file means an unannotated
// document, not an error.
func loadRelations(path string, edus int) ([]Relation, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open relations %s: %w", path, err)
	}
	defer f.Close()

	var rels []Relation
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: want src<TAB>dst<TAB>label, got %q", path, lineno, line)
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad src %q: %w", path, lineno, fields[0], err)
		}
		dst, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad dst %q: %w", path, lineno, fields[1], err)
		}
		if src < 1 || src > edus || dst < 1 || dst > edus {
			return nil, fmt.Errorf("%s:%d: EDU number out of range (document has %d EDUs)", path, lineno, edus)
		}
		rels = append(rels, Relation{Src: src, Dst: dst, Label: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read relations %s: %w", path, err)
	}
	return rels, nil
}
