package engine

import (
	"slices"
	"testing"
)

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(nil)
	e.AddListener(func(v int) { got = append(got, v*10) })

	if len(e.listeners) != 2 {
		t.Errorf("listener count = %d, want 2", len(e.listeners))
	}

	e.Invoke(3)
	if !slices.Equal(got, []int{3, 30}) {
		t.Errorf("got %v", got)
	}

	e.RemoveAllListeners()
	e.Invoke(4)
	if len(got) != 2 || len(e.listeners) != 0 {
		t.Errorf("listeners should be gone, got %v", got)
	}
}
