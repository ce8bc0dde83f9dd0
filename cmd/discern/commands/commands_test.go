package commands_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"discern/cmd/discern/commands"
	"discern/internal/cli"
	"discern/internal/model"
)

func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	edus := "The storm hit.\nbecause the wind rose,\nand the town flooded.\n"
	rels := "2\t1\tcause\n3\t1\tresult\n"
	if err := os.WriteFile(filepath.Join(dir, "wsj_01.edus"), []byte(edus), 0o644); err != nil {
		t.Fatalf("write edus: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wsj_01.rels"), []byte(rels), 0o644); err != nil {
		t.Fatalf("write rels: %v", err)
	}
	return dir
}

func TestNewRegistry_BuildsCleanGrammar(t *testing.T) {
	d := cli.NewDispatcher("discern", "test")
	if _, err := d.BuildGrammar(commands.NewRegistry()); err != nil {
		t.Fatalf("BuildGrammar: %v", err)
	}

	want := []string{"extract", "decode", "vocab", "inspect"}
	ds := commands.NewRegistry().Descriptors()
	if len(ds) != len(want) {
		t.Fatalf("descriptors = %d, want %d", len(ds), len(want))
	}
	for i, d := range ds {
		if d.Name() != want[i] {
			t.Errorf("descriptor %d = %q, want %q", i, d.Name(), want[i])
		}
	}
}

func TestExecute_ExtractThenDecode(t *testing.T) {
	corpusDir := writeCorpus(t)
	outDir := t.TempDir()

	err := commands.Execute([]string{
		"--config=", "extract", "--corpus", corpusDir, "--output", outDir,
	})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	pairs, err := os.ReadFile(filepath.Join(outDir, "pairs.svmlight"))
	if err != nil {
		t.Fatalf("read pairs: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(pairs), "\n"), "\n")
	if len(lines) != 6 { // 3 EDUs, every ordered pair
		t.Fatalf("pairs = %d lines, want 6", len(lines))
	}
	if !strings.Contains(string(pairs), "cause") {
		t.Fatal("pairs file misses the annotated relation")
	}
	if _, err := os.Stat(filepath.Join(outDir, "vocabulary.tsv")); err != nil {
		t.Fatalf("vocabulary: %v", err)
	}

	modelPath := filepath.Join(t.TempDir(), "model.yml")
	s := &model.Store{Path: modelPath}
	m := &model.Model{
		Bias:    -1,
		Weights: map[string]float64{"word_first_EDU1=because": 2},
	}
	if err := s.Save(m); err != nil {
		t.Fatalf("save model: %v", err)
	}

	err = commands.Execute([]string{
		"--config=", "decode", "--model", modelPath,
		"--corpus", corpusDir, "--output", outDir,
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	attachments, err := os.ReadFile(filepath.Join(outDir, "attachments.tsv"))
	if err != nil {
		t.Fatalf("read attachments: %v", err)
	}
	// Only the pairs led by the "because ..." EDU score above zero.
	for _, line := range strings.Split(strings.TrimRight(string(attachments), "\n"), "\n") {
		if !strings.HasPrefix(line, "wsj_01\t2\t") {
			t.Fatalf("unexpected attachment %q", line)
		}
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	err := commands.Execute([]string{"bogus"})
	var uerr *cli.UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *UsageError", err)
	}
	if cli.ExitCode(err) != 2 {
		t.Fatalf("exit code = %d, want 2", cli.ExitCode(err))
	}

	// decode without its required flag fails before any handler runs.
	err = commands.Execute([]string{"decode"})
	if !errors.As(err, &uerr) {
		t.Fatalf("got %v, want *UsageError", err)
	}
	if uerr.Command != "decode" {
		t.Fatalf("attributed to %q, want decode", uerr.Command)
	}
}

func TestExecute_MissingCorpusIsHandlerFailure(t *testing.T) {
	err := commands.Execute([]string{
		"--config=", "extract", "--corpus", filepath.Join(t.TempDir(), "absent"),
	})
	if err == nil {
		t.Fatal("want error for missing corpus directory")
	}
	if cli.ExitCode(err) != 1 {
		t.Fatalf("exit code = %d, want 1", cli.ExitCode(err))
	}
}
