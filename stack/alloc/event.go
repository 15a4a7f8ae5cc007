package alloc

import "fmt"

// EventKind distinguishes allocation from deallocation events.
type EventKind uint8

const (
	Allocated    EventKind = 1
	Deallocating EventKind = 2
)

func (k EventKind) String() string {
	switch k {
	case Allocated:
		return "allocated"
	case Deallocating:
		return "deallocating"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one observation emitted by Tracing. Addr identifies the node; it
// is only meaningful while the node is live, since the runtime may reuse it.
type Event struct {
	Kind EventKind
	Addr uintptr
}

// String renders the event in the trace line format.
func (e Event) String() string {
	return fmt.Sprintf("Object %s at %s", e.Kind, formatAddr(e.Addr))
}

func formatAddr(addr uintptr) string {
	return fmt.Sprintf("%#x", addr)
}
