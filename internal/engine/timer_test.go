package engine

import "testing"

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.AfterUnguarded(1.0, func() { order = append(order, "late") })
	s.AfterUnguarded(0.5, func() { order = append(order, "early") })
	s.AfterUnguarded(0.5, func() { order = append(order, "early-second") })

	if fired := s.Advance(0.4); fired != 0 {
		t.Fatalf("nothing should be due yet, fired %d", fired)
	}
	if fired := s.Advance(0.7); fired != 3 {
		t.Fatalf("expected 3 actions, fired %d", fired)
	}

	want := []string{"early", "early-second", "late"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("queue should be empty, len %d", s.Len())
	}
}

func TestSchedulerSkipsRetiredTarget(t *testing.T) {
	s := NewScheduler()
	span := NewGameObject("Span")
	ran := false

	s.After(1.0, TokenFor(span), func() { ran = true })
	s.Advance(0.5)
	span.SetActive(false)
	fired := s.Advance(1.0)

	if ran || fired != 0 {
		t.Error("action should be skipped once its target is deactivated")
	}
	if s.Len() != 0 {
		t.Error("stale entry should be dropped")
	}
}

func TestSchedulerSkipsReusedTarget(t *testing.T) {
	s := NewScheduler()
	span := NewGameObject("Span")
	ran := false

	s.After(1.0, TokenFor(span), func() { ran = true })
	// Retired and handed out again before the delay elapsed
	span.SetActive(false)
	span.SetActive(true)
	s.Advance(1.0)

	if ran {
		t.Error("a reused object must not receive the old action")
	}
}

func TestSchedulerRunsValidTarget(t *testing.T) {
	s := NewScheduler()
	span := NewGameObject("Span")
	ran := false

	s.After(1.0, TokenFor(span), func() { ran = true })
	s.Advance(1.0)

	if !ran {
		t.Error("action should run while the target is still live")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	id := s.AfterUnguarded(0.1, func() { ran = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel should find the pending action")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report nothing removed")
	}
	s.Advance(1)
	if ran {
		t.Error("cancelled action ran")
	}
}

func TestSchedulerActionMayScheduleMore(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.AfterUnguarded(0, func() {
		count++
		s.AfterUnguarded(0, func() { count++ })
	})

	s.Advance(0)
	if count != 2 {
		t.Errorf("follow-up action due now should run in the same Advance, count=%d", count)
	}
}

func TestZeroTokenIsInvalid(t *testing.T) {
	var tok Token
	if tok.Valid() {
		t.Error("zero token should never be valid")
	}
	if TokenFor(nil).Valid() {
		t.Error("token for nil should be invalid")
	}
}
