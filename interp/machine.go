package interp

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/monty/vm"
)

type Options struct {
	// MaxStack caps the stack depth; pushing past it fails like an
	// allocation failure. Zero means unlimited.
	MaxStack int
	// StrictArguments rejects push without a well-formed integer argument.
	StrictArguments bool
}

// Machine runs a Monty program one line at a time. It owns its stack
// exclusively for the duration of a run.
type Machine struct {
	ID              string
	Stack           *Stack
	Out             io.Writer
	DebugWriter     io.Writer
	StrictArguments bool

	line int
}

func NewMachine(out io.Writer, opts Options) *Machine {
	return &Machine{
		ID:              uuid.NewString(),
		Stack:           NewStack(opts.MaxStack),
		Out:             out,
		StrictArguments: opts.StrictArguments,
	}
}

// Line returns the number of lines consumed so far.
func (m *Machine) Line() int {
	return m.line
}

// Step consumes one source line. Blank and comment lines still advance
// the line counter.
func (m *Machine) Step(text string) error {
	m.line++
	in, ok := vm.ParseLine(text, m.line)
	if !ok {
		log.Trace().Str("run", m.ID).Int("line", m.line).Msg("Step: skipping blank or comment line")
		return nil
	}
	op, ok := vm.Lookup(in.Opcode)
	if !ok || handlers[op] == nil {
		return &UnknownInstructionError{Line: in.Line, Opcode: in.Opcode}
	}
	if err := handlers[op](m, in); err != nil {
		return err
	}
	log.Trace().Str("run", m.ID).Int("line", in.Line).Stringer("opcode", op).Int32("arg", in.Arg).Int("depth", m.Stack.Len()).Msg("Step: executed")
	if m.DebugWriter != nil {
		fmt.Fprintln(m.DebugWriter, FormatStep(in, m.Stack))
	}
	return nil
}

// Run executes every line read from r and stops at the first error.
// The stack is released on return whatever the outcome.
func (m *Machine) Run(r io.Reader) error {
	defer m.Stack.Clear()
	log.Debug().Str("run", m.ID).Msg("Run: starting")
	br := bufio.NewReader(r)
	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("reading line %d: %w", m.line+1, readErr)
		}
		if text != "" {
			if err := m.Step(text); err != nil {
				log.Debug().Str("run", m.ID).Int("line", m.line).Err(err).Msg("Run: aborted")
				return err
			}
		}
		if readErr != nil {
			break
		}
	}
	log.Debug().Str("run", m.ID).Int("lines", m.line).Msg("Run: finished")
	return nil
}
