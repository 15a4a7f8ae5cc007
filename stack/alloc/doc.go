// Package alloc provides the node allocation strategies used by package stack.
//
// # Overview
//
// A strategy decides how a container node is brought into existence and how it
// is torn down. The stack never calls new or clears a node itself; every node
// it owns passes through exactly one Create and exactly one Destroy of the
// strategy selected in its type.
//
// # Strategy Interface
//
// The core abstraction is the Strategy interface, which supports:
//
//   - Create(init): Allocate a node populated from init and hand over ownership
//   - Destroy(node): Tear down a node the caller exclusively owns
//
// # Implementations
//
// Default: Runtime-backed strategy
//
//   - Allocates with new(N), never fails
//   - Destroy zeroes the node so its value and link become collectable
//   - Stateless; the zero value is ready to use
//
// Tracing: Observing decorator around Default
//
//   - Emits an Allocated event after every successful Create
//   - Emits a Deallocating event before every Destroy
//   - Events carry the node address and go to an injected Sink
//   - The zero value writes to Stdout
//
// # Sinks
//
// WriterSink renders one line per event:
//
//	Object allocated at 0xc000012345
//	Object deallocating at 0xc000012345
//
// SlogSink and LogrSink forward events to structured loggers, and Recorder
// keeps them in memory so callers can check node-count conservation:
//
//	rec := &alloc.Recorder{}
//	st := stack.NewTracing[string](rec)
//	_ = st.Push("a")
//	rec.Live() // 1
//
// # Thread Safety
//
// Strategies hold no shared mutable state. WriterSink and Recorder serialize
// their own writes. SlogSink and LogrSink are as safe as the logger behind
// them, and SinkFunc and Tee as safe as the functions and sinks they call.
package alloc
