package alloc

// Strategy creates and destroys nodes of type N on behalf of a container.
//
// Implementations:
//   - Default: runtime allocation, never fails
//   - Tracing: Default plus an event per Create and Destroy
//
// A container selects its strategy in its type, so swapping strategies never
// changes the container's code.
type Strategy[N any] interface {
	// Create allocates a node populated from init and returns sole ownership
	// of it. On error no node exists and the caller's state must be unchanged.
	Create(init N) (*N, error)

	// Destroy tears down a node the caller exclusively owns. The node must not
	// be used afterwards.
	Destroy(n *N)
}

// Default allocates nodes on the Go heap.
type Default[N any] struct{}

// Create returns a fresh copy of init on the heap.
func (Default[N]) Create(init N) (*N, error) {
	n := new(N)
	*n = init
	return n, nil
}

// Destroy clears the node so nothing it referenced stays reachable through it.
func (Default[N]) Destroy(n *N) {
	if n == nil {
		return
	}
	var zero N
	*n = zero
}

var _ Strategy[int] = Default[int]{}
