package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"discern/internal/cli"
	"discern/internal/corpus"
	"discern/internal/features"
)

// inspectCommand dumps one parsed document, optionally with the feature
// values each EDU would contribute.
type inspectCommand struct {
	withFeatures bool
}

func newInspectCommand() *inspectCommand { return &inspectCommand{} }

func (c *inspectCommand) Name() string { return "inspect" }

func (c *inspectCommand) Synopsis() string {
	return "Dump one parsed document"
}

func (c *inspectCommand) Configure(g *cli.Subgrammar) {
	g.Positional("<document.edus>", cobra.ExactArgs(1))
	g.Flags().BoolVar(&c.withFeatures, "features", false, "also print per-EDU feature values")
}

func (c *inspectCommand) Run(inv *cli.Invocation) error {
	doc, err := corpus.LoadDocument(inv.Args[0])
	if err != nil {
		return err
	}
	spew.Dump(doc)

	if c.withFeatures {
		for _, edu := range doc.EDUs {
			fmt.Printf("%s:\n", edu.Identifier())
			for _, v := range features.Inspect(doc, edu) {
				fmt.Printf("  %s\n", v)
			}
		}
	}
	return nil
}

var _ cli.Descriptor = (*inspectCommand)(nil)
