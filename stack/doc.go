// Package stack provides a singly-linked LIFO container whose nodes are
// created and destroyed by an allocation strategy chosen in its type.
//
// # Overview
//
// A Stack owns a chain of nodes: the stack holds the top node, each node holds
// the next one down. Nodes never leave the package, so the only way to add or
// remove one is Push or Pop, and every node goes through exactly one
// Strategy.Create and one Strategy.Destroy.
//
// # Strategies
//
// The strategy is the second type parameter:
//
//	plain := stack.New[string]()                  // alloc.Default
//	traced := stack.NewTracing[string](alloc.Stdout) // alloc.Tracing
//
//	custom := stack.NewWith[string](myStrategy[stack.Node[string]]{})
//
// Both standard instantiations have aliases, Plain[T] and Traced[T].
//
// # Lifecycle
//
// Go has no destructors, so Close plays that role: it pops and destroys every
// remaining node, top first, through the stack's strategy. A stack that is
// dropped without Close is still collected by the runtime, but a Tracing
// strategy will never report those nodes as deallocated.
//
//	st := stack.New[int]()
//	defer st.Close()
//
// # Empty Stack
//
// Pop, Top and Peek on an empty stack return ErrEmpty. MustPop and MustTop
// panic with it instead, for callers that treat emptiness as a bug.
//
// # Copying
//
// A Stack must not be copied after first use; constructors return pointers and
// go vet reports copies.
//
// # Thread Safety
//
// Stack instances are not thread-safe. Callers must synchronize access
// externally.
package stack
