package interp

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/timewinder-dev/monty/vm"
)

// FormatStep renders one executed instruction and the resulting stack for
// the debug trace.
func FormatStep(in vm.Instruction, s *Stack) string {
	var b strings.Builder
	b.WriteString(color.Gray.Sprintf("L%-4d ", in.Line))
	b.WriteString(color.Cyan.Sprintf("%-5s", in.Opcode))
	if in.HasArg {
		b.WriteString(fmt.Sprintf(" %-11d", in.Arg))
	} else {
		b.WriteString(strings.Repeat(" ", 12))
	}
	b.WriteString(fmt.Sprintf(" depth=%d", s.Len()))
	if h, err := s.Hash(); err == nil {
		b.WriteString(color.Yellow.Sprintf(" hash=0x%016x", uint64(h)))
	}
	return b.String()
}
