package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/monty/vm"
)

// programName is reported in the usage diagnostic.
var programName = os.Args[0]

type rootOptions struct {
	logLevel   string
	configPath string
	maxStack   int
	strict     bool
	debug      bool
}

func setupLogging(level string, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(w, "Invalid log level '%s', using 'info'\n", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Program: programName}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "monty file",
		Short: "Interpret a Monty bytecode file",
		Long: "monty executes a Monty bytecode file line by line against a single stack of integers.\n" +
			"Supported opcodes: " + strings.Join(vm.Names(), ", "),
		Args:          usageArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.logLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Set log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML config file")
	cmd.Flags().IntVar(&opts.maxStack, "max-stack", 0, "Maximum stack depth, 0 for unlimited")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject push without an integer argument")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Trace each executed instruction on stderr")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
