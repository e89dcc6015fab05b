package interp

import (
	"errors"
	"fmt"
)

// ErrMallocFailed is returned when the stack cannot take another entry.
var ErrMallocFailed = errors.New("Error: malloc failed")

// UnknownInstructionError reports an opcode token with no registered handler.
type UnknownInstructionError struct {
	Line   int
	Opcode string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("L%d: unknown instruction %s", e.Line, e.Opcode)
}

// ArgumentError reports a missing or non-integer argument in strict mode.
type ArgumentError struct {
	Line   int
	Opcode string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("L%d: usage: %s integer", e.Line, e.Opcode)
}
