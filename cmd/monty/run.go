package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/monty/config"
	"github.com/timewinder-dev/monty/interp"
)

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("max-stack") {
		cfg.Interp.MaxStack = opts.maxStack
	}
	if flags.Changed("strict") {
		cfg.Interp.StrictArguments = opts.strict
	}
	if flags.Changed("debug") {
		cfg.Interp.Debug = opts.debug
	}
	return cfg, cfg.Validate()
}

// openProgram opens filename for reading. Directories count as unopenable.
func openProgram(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", filename)
	}
	return f, nil
}

func runFile(cmd *cobra.Command, opts *rootOptions, filename string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	f, err := openProgram(filename)
	if err != nil {
		log.Debug().Err(err).Str("file", filename).Msg("Couldn't open program")
		return &OpenError{Filename: filename, Err: err}
	}
	defer f.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	m := interp.NewMachine(out, cfg.Options())
	if cfg.Interp.Debug {
		m.DebugWriter = cmd.ErrOrStderr()
	}
	log.Debug().Str("run", m.ID).Str("file", filename).Int("max_stack", cfg.Interp.MaxStack).Bool("strict", cfg.Interp.StrictArguments).Msg("Running program")
	return m.Run(f)
}
