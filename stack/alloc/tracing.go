package alloc

import "unsafe"

// Tracing wraps Default and reports every allocation and deallocation to Sink.
// It adds observability only: the nodes it returns are exactly the ones
// Default returns.
type Tracing[N any] struct {
	// Sink receives the events. Nil selects Stdout.
	Sink Sink

	inner Default[N]
}

// NewTracing returns a Tracing strategy reporting to sink.
func NewTracing[N any](sink Sink) Tracing[N] {
	return Tracing[N]{Sink: sink}
}

// Create allocates through Default and records an Allocated event for the
// new node. A failed allocation records nothing.
func (t Tracing[N]) Create(init N) (*N, error) {
	n, err := t.inner.Create(init)
	if err != nil {
		return nil, err
	}
	t.sink().Record(Event{Kind: Allocated, Addr: addrOf(n)})
	return n, nil
}

// Destroy records a Deallocating event, then releases the node through Default.
func (t Tracing[N]) Destroy(n *N) {
	if n == nil {
		return
	}
	t.sink().Record(Event{Kind: Deallocating, Addr: addrOf(n)})
	t.inner.Destroy(n)
}

func (t Tracing[N]) sink() Sink {
	if t.Sink == nil {
		return Stdout
	}
	return t.Sink
}

func addrOf[N any](n *N) uintptr {
	return uintptr(unsafe.Pointer(n))
}

var _ Strategy[int] = Tracing[int]{}
