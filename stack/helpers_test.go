package stack

import "unsafe"

func addrOf[T any](n *Node[T]) uintptr {
	return uintptr(unsafe.Pointer(n))
}
