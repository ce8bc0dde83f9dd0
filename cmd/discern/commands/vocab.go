package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"discern/internal/cli"
	"discern/internal/vocabulary"
)

// vocabCommand prints a dumped vocabulary back in index order.
type vocabCommand struct{}

func newVocabCommand() *vocabCommand { return &vocabCommand{} }

func (c *vocabCommand) Name() string { return "vocab" }

func (c *vocabCommand) Synopsis() string {
	return "Print a vocabulary file in index order"
}

func (c *vocabCommand) Configure(g *cli.Subgrammar) {
	g.Positional("<vocabulary.tsv>", cobra.ExactArgs(1))
}

func (c *vocabCommand) Run(inv *cli.Invocation) error {
	vocab, err := vocabulary.LoadFile(inv.Args[0])
	if err != nil {
		return err
	}
	for i, name := range vocab.Names() {
		fmt.Printf("%d\t%s\n", i+1, name)
	}
	return nil
}

var _ cli.Descriptor = (*vocabCommand)(nil)
