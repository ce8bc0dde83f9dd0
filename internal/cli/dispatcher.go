package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Invocation is the result of one successful parse: the selected sub-command,
// its parsed flag set, leftover positionals, the accumulated verbosity count,
// and the handler bound to the matching descriptor. The handler binding is an
// explicit field resolved during Parse, not a convention callers must know
// about.
type Invocation struct {
	Subcommand string
	Flags      *pflag.FlagSet
	Args       []string
	Verbosity  int

	handler func(*Invocation) error
}

// Grammar is the fully built parse tree for one invocation. It is single-use:
// Parse consumes it and a fresh Grammar must be built for any further
// invocation, keeping independent invocations free of shared mutable state.
type Grammar struct {
	root      *cobra.Command
	verbosity int
	captured  *Invocation
}

// SetOutput redirects the grammar's help and usage output, primarily for
// tests.
func (g *Grammar) SetOutput(w io.Writer) {
	g.root.SetOut(w)
	g.root.SetErr(w)
}

// Help text enumerates sub-commands in registry order, not alphabetically.
func init() { cobra.EnableCommandSorting = false }

// Dispatcher composes a registry into one top-level grammar, parses an
// argument vector against it, and invokes the resolved handler. It holds only
// build-time configuration; all per-invocation state lives in the Grammar.
type Dispatcher struct {
	tool    string
	short   string
	globals func(*pflag.FlagSet)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithGlobalFlags registers extra persistent flags on the top-level grammar,
// alongside the built-in verbosity counter. They are available to every
// sub-command.
func WithGlobalFlags(fn func(*pflag.FlagSet)) Option {
	return func(d *Dispatcher) { d.globals = fn }
}

// NewDispatcher returns a dispatcher for the named tool. short is the
// one-line description shown at the top of the help text.
func NewDispatcher(tool, short string, opts ...Option) *Dispatcher {
	d := &Dispatcher{tool: tool, short: short}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BuildGrammar constructs the top-level grammar from the registry: one named
// sub-grammar per descriptor, attached in registry order, plus the persistent
// verbosity counter (-v/--verbose, repeatable and unbounded).
//
// Two descriptors sharing a name is a *ConfigError naming both positions;
// silently preferring one would drop functionality. An empty registry is also
// a *ConfigError, since the grammar would have nothing to dispatch to.
func (d *Dispatcher) BuildGrammar(reg *Registry) (*Grammar, error) {
	descriptors := reg.Descriptors()
	if len(descriptors) == 0 {
		return nil, &ConfigError{Reason: "registry is empty, no sub-commands to dispatch"}
	}

	g := &Grammar{}
	root := &cobra.Command{
		Use:           d.tool,
		Short:         d.short,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UsageError{Command: d.tool, Err: fmt.Errorf("missing sub-command")}
			}
			return &UsageError{Command: d.tool, Err: fmt.Errorf("unknown sub-command %q", args[0])}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", "increase logging verbosity (repeatable)")
	if d.globals != nil {
		d.globals(root.PersistentFlags())
	}

	seen := make(map[string]int, len(descriptors))
	for i, desc := range descriptors {
		name := desc.Name()
		if j, dup := seen[name]; dup {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("duplicate sub-command name %q (descriptors %d and %d)", name, j, i),
			}
		}
		seen[name] = i

		run := desc.Run
		sub := &cobra.Command{
			Use:          name,
			Short:        desc.Synopsis(),
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				// Capture only; the handler runs in Dispatch.
				g.captured = &Invocation{
					Subcommand: name,
					Flags:      cmd.Flags(),
					Args:       args,
					handler:    run,
				}
				return nil
			},
		}
		desc.Configure(&Subgrammar{cmd: sub})
		root.AddCommand(sub)
	}

	g.root = root
	return g, nil
}

// Parse consumes the argument vector against the grammar. On success exactly
// one handler is bound in the returned Invocation. A missing or unknown
// sub-command token and malformed flags yield a *UsageError attributed to the
// grammar that rejected the input; a help request yields ErrHelp. No handler
// runs during Parse.
func (d *Dispatcher) Parse(g *Grammar, argv []string) (*Invocation, error) {
	if argv == nil {
		// cobra falls back to os.Args for nil; an empty vector must stay
		// an empty vector.
		argv = []string{}
	}
	g.root.SetArgs(argv)
	cmd, err := g.root.ExecuteC()
	if err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			return nil, err
		}
		name := d.tool
		if cmd != nil && cmd.HasParent() {
			name = cmd.Name()
		}
		return nil, &UsageError{Command: name, Err: err}
	}
	if g.captured == nil {
		return nil, ErrHelp
	}
	g.captured.Verbosity = g.verbosity
	return g.captured, nil
}

// Dispatch invokes the invocation's bound handler exactly once. Handler
// errors are the handler's own domain and propagate unmodified.
func (d *Dispatcher) Dispatch(inv *Invocation) error {
	return inv.handler(inv)
}
