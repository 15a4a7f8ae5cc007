package stack

import "errors"

// ErrEmpty indicates Pop, Top or Peek was called on an empty stack.
var ErrEmpty = errors.New("stack: empty")
