package scenario

import (
	"fmt"
	"strconv"
)

// Target is the stack surface a scenario drives. *stack.Stack[string, S]
// satisfies it for every strategy S.
type Target interface {
	Push(value string) error
	Pop() (string, error)
	Peek() (string, error)
	Empty() bool
}

// Result summarizes a completed run.
type Result struct {
	Name   string   `json:"name"`
	Steps  int      `json:"steps"`
	Pushed int      `json:"pushed"`
	Popped []string `json:"popped"`
}

// Observer, when set on Run, is called after every successful step.
type Observer func(i int, st Step, got string)

// Run executes sc against target, stopping at the first failed operation or
// unmet expectation.
func Run(target Target, sc *Scenario, observe Observer) (*Result, error) {
	res := &Result{Name: sc.Name, Popped: []string{}}

	for i, st := range sc.Steps {
		got, err := apply(target, st)
		if err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		if st.Want != "" && got != st.Want {
			return res, fmt.Errorf("%w: step %d (%s): got %q, want %q", ErrMismatch, i, st.Op, got, st.Want)
		}

		switch st.Op {
		case OpPush:
			res.Pushed++
		case OpPop:
			res.Popped = append(res.Popped, got)
		}
		res.Steps++

		if observe != nil {
			observe(i, st, got)
		}
	}
	return res, nil
}

func apply(target Target, st Step) (string, error) {
	switch st.Op {
	case OpPush:
		return st.Value, target.Push(st.Value)
	case OpPop:
		return target.Pop()
	case OpTop:
		return target.Peek()
	case OpEmpty:
		return strconv.FormatBool(target.Empty()), nil
	default:
		return "", fmt.Errorf("%w: unknown op %q", ErrInvalid, st.Op)
	}
}
