package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Descriptor describes one pluggable sub-command. Implementations carry no
// knowledge of their siblings: Configure receives a Subgrammar scoped to this
// descriptor only, and Run receives the parsed invocation that selected it.
type Descriptor interface {
	// Name is the sub-command token on the command line. It must be unique
	// across the registry; the Dispatcher rejects duplicates while building
	// the grammar.
	Name() string

	// Synopsis is the one-line description shown in the tool's help text.
	Synopsis() string

	// Configure registers the sub-command's flags and positional arguments
	// on its own Subgrammar.
	Configure(g *Subgrammar)

	// Run handles a successfully parsed invocation of this sub-command.
	// A returned error is a handler failure; the Dispatcher propagates it
	// to the process boundary untouched.
	Run(inv *Invocation) error
}

// Subgrammar is the isolated parser handle a descriptor configures itself on.
// It exposes only the descriptor's own flag set, so one sub-command can never
// observe or corrupt another's grammar.
type Subgrammar struct {
	cmd *cobra.Command
}

// Flags returns the sub-command's own flag set.
func (g *Subgrammar) Flags() *pflag.FlagSet { return g.cmd.Flags() }

// MarkRequired marks a previously registered flag as mandatory. Omitting it
// on the command line becomes a usage error attributed to this sub-command.
func (g *Subgrammar) MarkRequired(name string) {
	_ = cobra.MarkFlagRequired(g.cmd.Flags(), name)
}

// Positional declares the sub-command's positional arguments: use is the
// placeholder text appended to the usage line, policy validates arity.
func (g *Subgrammar) Positional(use string, policy cobra.PositionalArgs) {
	g.cmd.Use = g.cmd.Name() + " " + use
	g.cmd.Args = policy
}
