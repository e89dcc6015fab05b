package interp

import "github.com/timewinder-dev/monty/vm"

// Handler executes one instruction against the machine's stack.
type Handler func(m *Machine, in vm.Instruction) error

// handlers is indexed by opcode. A nil entry is treated as unknown.
var handlers = [vm.OpcodeMax]Handler{
	vm.PUSH: opPush,
	vm.PALL: opPall,
}

func opPush(m *Machine, in vm.Instruction) error {
	if m.StrictArguments && (!in.HasArg || !vm.IsInteger(in.RawArg)) {
		return &ArgumentError{Line: in.Line, Opcode: in.Opcode}
	}
	return m.Stack.Push(in.Arg)
}

func opPall(m *Machine, in vm.Instruction) error {
	return m.Stack.PrintAll(m.Out)
}
