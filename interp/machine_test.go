package interp

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrograms(t *testing.T) {
	filepath.WalkDir("../testdata/programs", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".m") {
			return nil
		}
		name := filepath.Base(path)
		t.Run(name, programTest(path))
		return nil
	})
}

func programTest(path string) func(t *testing.T) {
	return func(t *testing.T) {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		want, err := os.ReadFile(strings.TrimSuffix(path, ".m") + ".out")
		require.NoError(t, err)

		var out bytes.Buffer
		m := NewMachine(&out, Options{})
		require.NoError(t, m.Run(f))
		require.Equal(t, string(want), out.String())
		require.Equal(t, 0, m.Stack.Len())
	}
}

func run(t *testing.T, src string, opts Options) (string, *Machine, error) {
	t.Helper()
	var out bytes.Buffer
	m := NewMachine(&out, opts)
	err := m.Run(strings.NewReader(src))
	return out.String(), m, err
}

func TestRunUnknownInstruction(t *testing.T) {
	out, m, err := run(t, "push 1\npall\nfoo\npush 2\npall\n", Options{})
	require.Equal(t, "1\n", out)
	var unknown *UnknownInstructionError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, 3, unknown.Line)
	require.Equal(t, "foo", unknown.Opcode)
	require.EqualError(t, err, "L3: unknown instruction foo")
	require.Equal(t, 3, m.Line(), "no line after the failing one is consumed")
	require.Equal(t, 0, m.Stack.Len(), "stack is released on the failure path")
}

func TestRunLineNumbersCountSkippedLines(t *testing.T) {
	_, _, err := run(t, "# header\n\n   \npush 1\nPall\n", Options{})
	require.EqualError(t, err, "L5: unknown instruction Pall")
}

func TestRunUnknownFirstTokenOnly(t *testing.T) {
	_, _, err := run(t, "  swap 1 2\n", Options{})
	require.EqualError(t, err, "L1: unknown instruction swap")
}

func TestRunEmptyInput(t *testing.T) {
	out, m, err := run(t, "", Options{})
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, 0, m.Line())
}

func TestRunMallocFailed(t *testing.T) {
	out, m, err := run(t, "push 1\npush 2\npall\npush 3\npall\n", Options{MaxStack: 2})
	require.ErrorIs(t, err, ErrMallocFailed)
	require.EqualError(t, err, "Error: malloc failed")
	require.Equal(t, "2\n1\n", out)
	require.Equal(t, 4, m.Line())
}

func TestStepMallocLeavesStackUnchanged(t *testing.T) {
	var out bytes.Buffer
	m := NewMachine(&out, Options{MaxStack: 1})
	require.NoError(t, m.Step("push 7\n"))
	require.ErrorIs(t, m.Step("push 8\n"), ErrMallocFailed)
	require.Equal(t, []int32{7}, m.Stack.Values())
}

func TestPushWithoutArgumentIsZero(t *testing.T) {
	a, _, err := run(t, "push\npall\n", Options{})
	require.NoError(t, err)
	b, _, err := run(t, "push 0\npall\n", Options{})
	require.NoError(t, err)
	c, _, err := run(t, "push abc\npall\n", Options{})
	require.NoError(t, err)
	require.Equal(t, "0\n", a)
	require.Equal(t, a, b)
	require.Equal(t, a, c)
}

func TestStrictArguments(t *testing.T) {
	for _, line := range []string{"push", "push abc", "push 1x", "push -", "push \t"} {
		_, _, err := run(t, "pall\n"+line+"\n", Options{StrictArguments: true})
		var argErr *ArgumentError
		require.ErrorAs(t, err, &argErr, line)
		require.EqualError(t, err, "L2: usage: push integer", line)
	}

	out, _, err := run(t, "push -5\npush +3\npall\n", Options{StrictArguments: true})
	require.NoError(t, err)
	require.Equal(t, "3\n-5\n", out)
}

func TestStepLIFO(t *testing.T) {
	var out bytes.Buffer
	m := NewMachine(&out, Options{})
	var want []string
	for i := 1; i <= 50; i++ {
		require.NoError(t, m.Step("push "+strconv.Itoa(i)))
		want = append([]string{strconv.Itoa(i)}, want...)
	}
	require.NoError(t, m.Step("pall"))
	require.Equal(t, strings.Join(want, "\n")+"\n", out.String())
	require.Equal(t, 51, m.Line())
}

func TestDebugTrace(t *testing.T) {
	var out, trace bytes.Buffer
	m := NewMachine(&out, Options{})
	m.DebugWriter = &trace
	require.NoError(t, m.Run(strings.NewReader("push 5\n# skip\npall\n")))
	lines := strings.Split(strings.TrimRight(trace.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "L1")
	require.Contains(t, lines[0], "push")
	require.Contains(t, lines[0], "depth=1")
	require.Contains(t, lines[0], "hash=0x")
	require.Contains(t, lines[1], "L3")
	require.Contains(t, lines[1], "pall")
	require.Equal(t, "5\n", out.String())
}

func TestMachinesHaveDistinctIDs(t *testing.T) {
	a := NewMachine(nil, Options{})
	b := NewMachine(nil, Options{})
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}
