package vm

import (
	"fmt"
	"math"
	"strings"
)

// Instruction is one parsed program line.
type Instruction struct {
	Line   int
	Opcode string
	Arg    int32
	HasArg bool
	RawArg string
}

func (i Instruction) String() string {
	if !i.HasArg {
		return fmt.Sprintf("L%d %s", i.Line, i.Opcode)
	}
	return fmt.Sprintf("L%d %s %s", i.Line, i.Opcode, i.RawArg)
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ParseLine splits a source line into an opcode token and an optional
// argument. It reports false for blank lines and comments.
func ParseLine(text string, line int) (Instruction, bool) {
	fields := strings.FieldsFunc(text, isSeparator)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Instruction{}, false
	}
	in := Instruction{
		Line:   line,
		Opcode: fields[0],
	}
	if len(fields) > 1 {
		in.HasArg = true
		in.RawArg = fields[1]
		in.Arg = Atoi(fields[1])
	}
	return in, true
}

// Atoi converts s the way C's atoi does: leading whitespace, an optional
// sign and as many decimal digits as follow. Anything else yields 0.
// Out of range values clamp to int64 and are then truncated to int32.
func Atoi(s string) int32 {
	return int32(parseLeadingInt(s))
}

// IsInteger reports whether s is entirely an optionally signed decimal integer.
func IsInteger(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseLeadingInt(s string) int64 {
	i := 0
	for i < len(s) && strings.IndexByte(" \t\n\v\f\r", s[i]) >= 0 {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var n uint64
	overflow := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := uint64(s[i] - '0')
		if !overflow && n > (math.MaxInt64-d)/10 {
			overflow = true
		}
		if !overflow {
			n = n*10 + d
		}
		i++
	}
	if i == start {
		return 0
	}
	switch {
	case overflow && neg:
		return math.MinInt64
	case overflow:
		return math.MaxInt64
	case neg:
		return -int64(n)
	}
	return int64(n)
}
