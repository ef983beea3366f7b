package control

// actionKind names the classes of mutation that must wait for the next safe
// scheduling point instead of running mid-frame.
type actionKind int

const (
	actionPendingNav actionKind = iota
	actionRealign
	actionNotify

	actionKinds
)

// scheduler is a single-slot pending-action queue per action kind. Repeated
// requests of the same kind within one frame coalesce: the latest request
// replaces the previous one, and each kind runs at most once per drain.
type scheduler struct {
	slots [actionKinds]func()
}

func (s *scheduler) schedule(kind actionKind, fn func()) {
	s.slots[kind] = fn
}

func (s *scheduler) pending(kind actionKind) bool {
	return s.slots[kind] != nil
}

// drain executes each scheduled action once, in kind order. Actions may
// reschedule themselves; a rescheduled action waits for the next drain.
func (s *scheduler) drain() {
	var taken [actionKinds]func()
	for k := range s.slots {
		taken[k] = s.slots[k]
		s.slots[k] = nil
	}
	for _, fn := range taken {
		if fn != nil {
			fn()
		}
	}
}

// clear drops every scheduled action without running it.
func (s *scheduler) clear() {
	for k := range s.slots {
		s.slots[k] = nil
	}
}
