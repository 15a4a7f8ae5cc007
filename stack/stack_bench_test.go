package stack

import (
	"testing"

	"github.com/joshuapare/nodestack/stack/alloc"
)

// BenchmarkPushPop_Default measures a push/pop pair with runtime allocation.
func BenchmarkPushPop_Default(b *testing.B) {
	s := New[int]()
	b.ReportAllocs()

	for i := range b.N {
		_ = s.Push(i)
		_, _ = s.Pop()
	}
}

// BenchmarkPushPop_Tracing measures the same pair with a discarding sink, so
// the difference to Default is the cost of building and dispatching events.
func BenchmarkPushPop_Tracing(b *testing.B) {
	s := NewTracing[int](alloc.SinkFunc(func(alloc.Event) {}))
	b.ReportAllocs()

	for i := range b.N {
		_ = s.Push(i)
		_, _ = s.Pop()
	}
}

// BenchmarkClose measures tearing down a 1024-deep stack.
func BenchmarkClose(b *testing.B) {
	s := New[int]()
	b.ReportAllocs()

	for range b.N {
		for i := range 1024 {
			_ = s.Push(i)
		}
		s.Close()
	}
}
