package model_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"discern/internal/corpus"
	"discern/internal/features"
	"discern/internal/model"
)

func sample() *model.Model {
	return &model.Model{
		Name: "attach-v1",
		Bias: -0.5,
		Weights: map[string]float64{
			"word_first_EDU1=because": 2.0,
			"num_edus_between":        -0.25,
		},
	}
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yml")
	s := &model.Store{Path: path}

	if err := s.Save(sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "attach-v1" || got.Bias != -0.5 {
		t.Fatalf("loaded %+v", got)
	}
	if got.Weights["word_first_EDU1=because"] != 2.0 {
		t.Fatalf("weights = %v", got.Weights)
	}
}

func TestStore_DetectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yml")
	s := &model.Store{Path: path}
	if err := s.Save(sample()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	edited := strings.Replace(string(raw), "-0.5", "-0.75", 1)
	if edited == string(raw) {
		t.Fatal("test fixture did not change the file")
	}
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	if _, err := s.Load(); !errors.Is(err, model.ErrDigestMismatch) {
		t.Fatalf("Load = %v, want ErrDigestMismatch", err)
	}
}

func TestStore_MissingFile(t *testing.T) {
	s := &model.Store{Path: filepath.Join(t.TempDir(), "nope.yml")}
	if _, err := s.Load(); err == nil {
		t.Fatal("want error for missing model file")
	}
}

func TestModel_Score(t *testing.T) {
	m := sample()
	doc := &corpus.Document{Name: "d"}
	doc.EDUs = []corpus.EDU{
		{Doc: "d", Num: 1, Text: "It rained."},
		{Doc: "d", Num: 2, Text: "because clouds gathered."},
	}

	x := &features.Extractor{Live: true}
	vecs := x.Document(doc)

	var forward features.PairVector // (2, 1): "because ..." attaching backwards
	for _, v := range vecs {
		if v.Src == 2 && v.Dst == 1 {
			forward = v
		}
	}

	// bias -0.5, word_first_EDU1=because +2.0, num_edus_between 0 * -0.25.
	if got := m.Score(forward); got != 1.5 {
		t.Fatalf("score = %g, want 1.5", got)
	}
	if !m.Attached(forward) {
		t.Fatal("want predicted attachment")
	}
}
