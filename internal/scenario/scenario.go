// Package scenario loads and replays scripted stack operations with expected
// results.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMismatch indicates a step's observed result differed from its want.
	ErrMismatch = errors.New("scenario: mismatch")

	// ErrInvalid indicates a malformed scenario document.
	ErrInvalid = errors.New("scenario: invalid")
)

// Op names a stack operation.
type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpTop   Op = "top"
	OpEmpty Op = "empty"
)

// Step is one operation. Value is the pushed value; Want is the expected
// popped or top value, or "true"/"false" for empty. An empty Want on pop or
// top checks nothing.
type Step struct {
	Op    Op     `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Want  string `yaml:"want,omitempty"`
}

// Scenario is a named sequence of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

//go:embed reference.yaml
var referenceYAML []byte

// Reference returns the built-in sequence: push 1, 2; pop 2, 1; push 3, pop 3;
// push 4, 5; pop 5, leaving 4 on the stack.
func Reference() *Scenario {
	sc, err := Load(bytes.NewReader(referenceYAML))
	if err != nil {
		panic(fmt.Sprintf("scenario: embedded reference: %v", err))
	}
	return sc
}

// Load decodes and validates a scenario document.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads a scenario from path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks every step is well formed and rewrites empty wants such as
// "TRUE" or "1" to "true" or "false".
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalid)
	}
	for i, st := range sc.Steps {
		switch st.Op {
		case OpPush:
			if st.Want != "" {
				return fmt.Errorf("%w: step %d: push takes value, not want", ErrInvalid, i)
			}
		case OpPop, OpTop:
			if st.Value != "" {
				return fmt.Errorf("%w: step %d: %s takes want, not value", ErrInvalid, i, st.Op)
			}
		case OpEmpty:
			want, err := strconv.ParseBool(st.Want)
			if err != nil {
				return fmt.Errorf("%w: step %d: empty wants true or false, got %q", ErrInvalid, i, st.Want)
			}
			// Run compares against strconv.FormatBool, so store the canonical spelling.
			sc.Steps[i].Want = strconv.FormatBool(want)
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalid, i, st.Op)
		}
	}
	return nil
}
