package commands

import (
	"errors"

	"github.com/spf13/pflag"

	"discern/internal/cli"
	"discern/internal/config"
	"discern/internal/xlog"
)

var (
	configPath string
	cfg        = config.Default()
)

// NewRegistry returns the tool's sub-commands in listing order.
func NewRegistry() *cli.Registry {
	return cli.NewRegistry(
		newExtractCommand(),
		newDecodeCommand(),
		newVocabCommand(),
		newInspectCommand(),
	)
}

// Execute runs one full dispatch pass over argv. It returns nil when the
// handler succeeded or help was requested; the caller maps other errors to
// exit codes via cli.ExitCode.
func Execute(argv []string) error {
	dispatcher := cli.NewDispatcher("discern", "Discourse corpus learning tool",
		cli.WithGlobalFlags(func(fs *pflag.FlagSet) {
			fs.StringVar(&configPath, "config", "/etc/discern.yml:./discern.yml",
				"colon-separated list of configuration files")
		}),
	)

	grammar, err := dispatcher.BuildGrammar(NewRegistry())
	if err != nil {
		return err
	}
	inv, err := dispatcher.Parse(grammar, argv)
	if errors.Is(err, cli.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	xlog.Init(inv.Verbosity)
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	return dispatcher.Dispatch(inv)
}

// orConfig prefers an explicitly set flag value over the config default.
func orConfig(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}
