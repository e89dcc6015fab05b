package interp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dgryski/go-farm"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/shamaton/msgpack/v2"
)

// StackHash identifies the contents of a stack. Equal stacks hash equally.
type StackHash uint64

// Stack is a LIFO of int32 values held in a doubly linked node chain.
// The head of the chain is the top of the stack. The zero value is an
// empty stack with no size limit.
type Stack struct {
	nodes *doublylinkedlist.List

	// Limit caps the number of entries. Zero or negative means unlimited.
	Limit int
}

func NewStack(limit int) *Stack {
	return &Stack{
		nodes: doublylinkedlist.New(),
		Limit: limit,
	}
}

func (s *Stack) list() *doublylinkedlist.List {
	if s.nodes == nil {
		s.nodes = doublylinkedlist.New()
	}
	return s.nodes
}

// Push makes v the new top. When the stack is full it returns
// ErrMallocFailed and leaves the stack untouched.
func (s *Stack) Push(v int32) error {
	if s.Limit > 0 && s.Len() >= s.Limit {
		return ErrMallocFailed
	}
	s.list().Prepend(v)
	return nil
}

func (s *Stack) Len() int {
	if s.nodes == nil {
		return 0
	}
	return s.nodes.Size()
}

func (s *Stack) Top() (int32, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	v, _ := s.nodes.Get(0)
	return v.(int32), true
}

// Values returns a copy of the stack, top first.
func (s *Stack) Values() []int32 {
	out := make([]int32, 0, s.Len())
	if s.nodes == nil {
		return out
	}
	it := s.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int32))
	}
	return out
}

// PrintAll writes every value, top first, one per line.
func (s *Stack) PrintAll(w io.Writer) error {
	if s.nodes == nil {
		return nil
	}
	it := s.nodes.Iterator()
	for it.Next() {
		if _, err := fmt.Fprintf(w, "%d\n", it.Value().(int32)); err != nil {
			return err
		}
	}
	return nil
}

// Clear releases every node.
func (s *Stack) Clear() {
	if s.nodes != nil {
		s.nodes.Clear()
	}
}

func (s *Stack) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, s.Values())
}

func (s *Stack) Hash() (StackHash, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return 0, err
	}
	return StackHash(farm.Hash64(buf.Bytes())), nil
}

func (s *Stack) String() string {
	return fmt.Sprint(s.Values())
}
