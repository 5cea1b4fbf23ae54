package engine

import "testing"

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var got []int
	e.AddListener(func() { got = append(got, 1) })
	e.AddListener(func() { got = append(got, 2) })

	e.Invoke()

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("listeners ran as %v", got)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e EventWithArg[int]
	total := 0
	id := e.AddListener(func(v int) { total += v })
	e.AddListener(func(v int) { total += 10 * v })

	e.RemoveListener(id)
	e.Invoke(2)

	if total != 20 {
		t.Errorf("expected only the second listener to run, total=%d", total)
	}
	if e.GetListenerCount() != 1 {
		t.Errorf("expected 1 listener, got %d", e.GetListenerCount())
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e Event
	calls := 0
	var second ListenerID
	e.AddListener(func() {
		calls++
		e.RemoveListener(second)
	})
	second = e.AddListener(func() { calls++ })

	e.Invoke()
	if calls != 2 {
		t.Errorf("removal during Invoke should not affect the running snapshot, calls=%d", calls)
	}

	e.Invoke()
	if calls != 3 {
		t.Errorf("removed listener should not run on the next Invoke, calls=%d", calls)
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var e Event
	if id := e.AddListener(nil); id != 0 {
		t.Error("nil listener should not be registered")
	}
	e.Invoke()
}
