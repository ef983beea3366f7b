package control

import "testing"

func TestSchedulerLatestWins(t *testing.T) {
	var s scheduler
	var got []int
	s.schedule(actionRealign, func() { got = append(got, 1) })
	s.schedule(actionRealign, func() { got = append(got, 2) })
	s.drain()

	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("drain ran %v, want only the latest action [2]", got)
	}
}

func TestSchedulerOneActionPerKindPerDrain(t *testing.T) {
	var s scheduler
	var runs int
	s.schedule(actionNotify, func() { runs++ })
	s.drain()
	s.drain()

	if runs != 1 {
		t.Fatalf("action ran %d times, want 1", runs)
	}
}

func TestSchedulerKindsAreIndependent(t *testing.T) {
	var s scheduler
	var got []string
	s.schedule(actionNotify, func() { got = append(got, "notify") })
	s.schedule(actionRealign, func() { got = append(got, "realign") })
	s.drain()

	if len(got) != 2 || got[0] != "realign" || got[1] != "notify" {
		t.Fatalf("drain order = %v, want [realign notify]", got)
	}
}

func TestSchedulerRescheduleDuringDrain(t *testing.T) {
	var s scheduler
	var runs int
	s.schedule(actionPendingNav, func() {
		runs++
		s.schedule(actionPendingNav, func() { runs++ })
	})
	s.drain()
	if runs != 1 {
		t.Fatalf("rescheduled action ran in the same drain (runs=%d)", runs)
	}
	s.drain()
	if runs != 2 {
		t.Fatalf("rescheduled action did not run in the next drain (runs=%d)", runs)
	}
}

func TestSchedulerClearDropsActions(t *testing.T) {
	var s scheduler
	var runs int
	s.schedule(actionRealign, func() { runs++ })
	s.clear()
	s.drain()
	if runs != 0 {
		t.Fatalf("cleared action still ran")
	}
	if s.pending(actionRealign) {
		t.Fatalf("cleared slot still reports pending")
	}
}
