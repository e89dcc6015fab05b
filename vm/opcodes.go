package vm

type Opcode uint32

const (
	NOP Opcode = iota
	// PRE-STACK ... TOS | OP | POST-STACK |
	PUSH // ... | x | ... x
	PALL // ... | print every entry, top first | ...

	OpcodeMax
)

// opcodeNames is the fixed name table. Names are case-sensitive.
var opcodeNames = map[string]Opcode{
	"push": PUSH,
	"pall": PALL,
}

// Lookup resolves an opcode token to its Opcode. Only exact matches count.
func Lookup(name string) (Opcode, bool) {
	op, ok := opcodeNames[name]
	return op, ok
}

// Names returns every registered opcode name, in Opcode order.
func Names() []string {
	out := make([]string, 0, len(opcodeNames))
	for o := NOP + 1; o < OpcodeMax; o++ {
		out = append(out, o.String())
	}
	return out
}

func (o Opcode) String() string {
	switch o {
	case NOP:
		return "nop"
	case PUSH:
		return "push"
	case PALL:
		return "pall"
	}
	panic("Unnamed opcode")
}
