package alloc

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracing_CreateEmitsAllocated(t *testing.T) {
	rec := &Recorder{}
	tr := NewTracing[testNode](rec)

	n, err := tr.Create(testNode{value: "x"})
	require.NoError(t, err)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, Allocated, events[0].Kind)
	assert.Equal(t, addrOf(n), events[0].Addr)
	assert.Equal(t, "x", n.value, "tracing must not alter the created node")
}

func TestTracing_DestroyEmitsBeforeRelease(t *testing.T) {
	var seen string
	var n *testNode
	tr := NewTracing[testNode](SinkFunc(func(e Event) {
		if e.Kind == Deallocating {
			// The node is still intact when the event fires.
			seen = n.value
		}
	}))

	var err error
	n, err = tr.Create(testNode{value: "alive"})
	require.NoError(t, err)

	tr.Destroy(n)
	assert.Equal(t, "alive", seen)
	assert.Empty(t, n.value, "node released after the event")
}

func TestTracing_EventOrderMirrorsCalls(t *testing.T) {
	rec := &Recorder{}
	tr := NewTracing[testNode](rec)

	a, err := tr.Create(testNode{value: "a"})
	require.NoError(t, err)
	b, err := tr.Create(testNode{value: "b"})
	require.NoError(t, err)
	tr.Destroy(b)
	tr.Destroy(a)

	want := []Event{
		{Kind: Allocated, Addr: addrOf(a)},
		{Kind: Allocated, Addr: addrOf(b)},
		{Kind: Deallocating, Addr: addrOf(b)},
		{Kind: Deallocating, Addr: addrOf(a)},
	}
	assert.Equal(t, want, rec.Events())
	assert.Equal(t, 0, rec.Live())
}

func TestTracing_DestroyNilEmitsNothing(t *testing.T) {
	rec := &Recorder{}
	tr := NewTracing[testNode](rec)
	tr.Destroy(nil)
	assert.Empty(t, rec.Events())
}

func TestTracing_ZeroValueUsesStdout(t *testing.T) {
	var buf bytes.Buffer
	orig := Stdout
	Stdout = NewWriterSink(&buf)
	t.Cleanup(func() { Stdout = orig })

	var tr Tracing[testNode]
	n, err := tr.Create(testNode{value: "z"})
	require.NoError(t, err)
	tr.Destroy(n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	addr := fmt.Sprintf("%#x", addrOf(n))
	assert.Equal(t, "Object allocated at "+addr, lines[0])
	assert.Equal(t, "Object deallocating at "+addr, lines[1])
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"allocated", Event{Kind: Allocated, Addr: 0xc000010000}, "Object allocated at 0xc000010000"},
		{"deallocating", Event{Kind: Deallocating, Addr: 0xc000010000}, "Object deallocating at 0xc000010000"},
		{"unknown kind", Event{Kind: 9, Addr: 0x10}, "Object EventKind(9) at 0x10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ev.String())
		})
	}
}
