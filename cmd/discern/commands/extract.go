package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"discern/internal/app"
	"discern/internal/cli"
	"discern/internal/svmlight"
	"discern/internal/vocabulary"
	"discern/internal/xlog"
)

const (
	pairsFile = "pairs.svmlight"
	vocabFile = "vocabulary.tsv"
)

// extractCommand extracts labelled pair feature vectors from a corpus and
// writes them alongside the vocabulary they index into.
type extractCommand struct {
	corpusDir string
	outputDir string
	live      bool
}

func newExtractCommand() *extractCommand { return &extractCommand{} }

func (c *extractCommand) Name() string { return "extract" }

func (c *extractCommand) Synopsis() string {
	return "Extract pair feature vectors from a corpus"
}

func (c *extractCommand) Configure(g *cli.Subgrammar) {
	fs := g.Flags()
	fs.StringVar(&c.corpusDir, "corpus", "", "corpus directory (default from config)")
	fs.StringVar(&c.outputDir, "output", "", "output directory (default from config)")
	fs.BoolVar(&c.live, "live", false, "extract unlabelled vectors for decoding")
}

func (c *extractCommand) Run(inv *cli.Invocation) error {
	logger := xlog.Get("extract")

	wire, err := app.NewWire(app.Config{
		CorpusDir: orConfig(c.corpusDir, cfg.CorpusDir),
		OutputDir: orConfig(c.outputDir, cfg.OutputDir),
		Live:      c.live,
	})
	if err != nil {
		return err
	}

	paths, err := wire.Reader.Files()
	if err != nil {
		return err
	}
	docs, err := wire.Reader.Slurp(context.Background(), paths)
	if err != nil {
		return err
	}

	outputDir := orConfig(c.outputDir, cfg.OutputDir)
	out, err := os.Create(filepath.Join(outputDir, pairsFile))
	if err != nil {
		return err
	}
	defer out.Close()

	vocab := vocabulary.New()
	w := svmlight.NewWriter(out)
	pairs := 0
	for _, doc := range docs {
		for _, vec := range wire.Extractor.Document(doc) {
			entries := make([]svmlight.Entry, 0, len(vec.Values))
			for _, v := range vec.Values {
				entries = append(entries, svmlight.Entry{
					Index: vocab.Intern(v.VocabName()),
					Value: v.Magnitude(),
				})
			}
			label := "?"
			if !c.live {
				label = "-1"
				if vec.Attached {
					label = "+1"
				}
			}
			comment := fmt.Sprintf("%s %d %d", vec.Doc, vec.Src, vec.Dst)
			if vec.Label != "" {
				comment += " " + vec.Label
			}
			if err := w.Encode(label, entries, comment); err != nil {
				return err
			}
			pairs++
		}
		logger.Debugf("extracted %s", doc.Name)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := vocabulary.DumpFile(filepath.Join(outputDir, vocabFile), vocab); err != nil {
		return err
	}

	logger.Infof("extracted %d pairs from %d documents (%d features)",
		pairs, len(docs), vocab.Len())
	return nil
}

var _ cli.Descriptor = (*extractCommand)(nil)
