package loop

// Scheduler runs at most one pending tick callback per frame.
type Scheduler interface {
	// ScheduleNextTick replaces any pending callback with fn.
	ScheduleNextTick(fn func())
	// Cancel drops the pending callback, if any.
	Cancel()
}

// FrameScheduler holds the pending callback until the host's frame clock
// fires it. A display host calls RunFrame once per refresh; tests call it by
// hand.
type FrameScheduler struct {
	pending func()
	frames  uint64
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) ScheduleNextTick(fn func()) {
	s.pending = fn
}

func (s *FrameScheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a callback is waiting for the next frame.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// RunFrame fires the pending callback, if any. The callback is cleared before
// it runs so it can reschedule itself.
func (s *FrameScheduler) RunFrame() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	s.frames++
	fn()
	return true
}

// Frames counts callbacks fired so far.
func (s *FrameScheduler) Frames() uint64 {
	return s.frames
}
