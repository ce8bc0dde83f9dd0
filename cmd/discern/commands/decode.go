package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"discern/internal/app"
	"discern/internal/cli"
	"discern/internal/xlog"
)

const attachmentsFile = "attachments.tsv"

// decodeCommand scores every EDU pair of a corpus with a trained model and
// writes the predicted attachments.
type decodeCommand struct {
	modelPath string
	corpusDir string
	outputDir string
}

func newDecodeCommand() *decodeCommand { return &decodeCommand{} }

func (c *decodeCommand) Name() string { return "decode" }

func (c *decodeCommand) Synopsis() string {
	return "Predict attachments with a trained model"
}

func (c *decodeCommand) Configure(g *cli.Subgrammar) {
	fs := g.Flags()
	fs.StringVar(&c.modelPath, "model", "", "trained model file")
	fs.StringVar(&c.corpusDir, "corpus", "", "corpus directory (default from config)")
	fs.StringVar(&c.outputDir, "output", "", "output directory (default from config)")
	g.MarkRequired("model")
}

func (c *decodeCommand) Run(inv *cli.Invocation) error {
	logger := xlog.Get("decode")

	wire, err := app.NewWire(app.Config{
		CorpusDir: orConfig(c.corpusDir, cfg.CorpusDir),
		OutputDir: orConfig(c.outputDir, cfg.OutputDir),
		ModelPath: c.modelPath,
		Live:      true,
	})
	if err != nil {
		return err
	}

	m, err := wire.Models.Load()
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
	out, err := os.Create(filepath.Join(outputDir, attachmentsFile))
	if err != nil {
		return err
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	scored, attached := 0, 0
	for _, doc := range docs {
		for _, vec := range wire.Extractor.Document(doc) {
			scored++
			score := m.Score(vec)
			if score <= 0 {
				continue
			}
			attached++
			if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%g\n", vec.Doc, vec.Src, vec.Dst, score); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	logger.Infof("decoded %d documents: %d of %d pairs attached", len(docs), attached, scored)
	return nil
}

var _ cli.Descriptor = (*decodeCommand)(nil)
