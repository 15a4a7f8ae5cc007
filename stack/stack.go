package stack

import (
	"fmt"

	"github.com/joshuapare/nodestack/stack/alloc"
)

// Node is one link of a Stack's chain. Its fields are private to this
// package; the type is exported only so strategies can be named in a
// Stack's type, as in alloc.Tracing[stack.Node[string]].
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Stack is a LIFO container over T whose nodes are managed by S.
type Stack[T any, S alloc.Strategy[Node[T]]] struct {
	noCopy noCopy

	top      *Node[T]
	len      int
	strategy S
}

// Plain is a Stack using the runtime allocation strategy.
type Plain[T any] = Stack[T, alloc.Default[Node[T]]]

// Traced is a Stack whose allocations and deallocations are reported to a sink.
type Traced[T any] = Stack[T, alloc.Tracing[Node[T]]]

// New returns an empty stack using alloc.Default.
func New[T any]() *Plain[T] {
	return &Plain[T]{}
}

// NewTracing returns an empty stack using alloc.Tracing reporting to sink.
// A nil sink reports to alloc.Stdout.
func NewTracing[T any](sink alloc.Sink) *Traced[T] {
	return NewWith[T](alloc.NewTracing[Node[T]](sink))
}

// NewWith returns an empty stack using the given strategy value.
func NewWith[T any, S alloc.Strategy[Node[T]]](strategy S) *Stack[T, S] {
	return &Stack[T, S]{strategy: strategy}
}

// Push places value on top of the stack. If the strategy cannot create the
// node, the error is returned and the stack is left as it was.
func (s *Stack[T, S]) Push(value T) error {
	n, err := s.strategy.Create(Node[T]{value: value, next: s.top})
	if err != nil {
		return fmt.Errorf("stack: push: %w", err)
	}
	s.top = n
	s.len++
	return nil
}

// Pop removes the top node and returns its value. It returns ErrEmpty if
// the stack is empty.
func (s *Stack[T, S]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.detach(), nil
}

// Top returns a pointer to the top value. The pointer is valid until the next
// Push, Pop or Close.
func (s *Stack[T, S]) Top() (*T, error) {
	if s.top == nil {
		return nil, ErrEmpty
	}
	return &s.top.value, nil
}

// Peek returns a copy of the top value.
func (s *Stack[T, S]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.top.value, nil
}

// MustPop is Pop for callers that have already checked Empty. It panics with
// ErrEmpty on an empty stack.
func (s *Stack[T, S]) MustPop() T {
	v, err := s.Pop()
	if err != nil {
		panic(err)
	}
	return v
}

// MustTop is Top for callers that have already checked Empty. It panics with
// ErrEmpty on an empty stack.
func (s *Stack[T, S]) MustTop() *T {
	p, err := s.Top()
	if err != nil {
		panic(err)
	}
	return p
}

// Empty reports whether the stack holds no values.
func (s *Stack[T, S]) Empty() bool {
	return s.top == nil
}

// Len returns the number of values on the stack.
func (s *Stack[T, S]) Len() int {
	return s.len
}

// Close destroys every remaining node, top first, through the stack's
// strategy. The stack is empty and usable afterwards.
func (s *Stack[T, S]) Close() {
	for s.top != nil {
		s.detach()
	}
}

// detach unlinks the top node, destroys it and returns its value.
// The caller guarantees the stack is not empty.
func (s *Stack[T, S]) detach() T {
	n := s.top
	v := n.value
	s.top = n.next
	n.next = nil
	s.len--
	s.strategy.Destroy(n)
	return v
}

// noCopy makes go vet's copylocks check flag copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
