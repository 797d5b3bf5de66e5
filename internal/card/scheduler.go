package card

// Clock supplies monotonic seconds. The desktop loop wraps glfw.GetTime;
// tests supply a manual value.
type Clock interface {
	Now() float64
}

// Scheduler is the cooperative timing surface the celebration runs on:
// per-frame callbacks and one-shot delays, all fired from the main loop.
// A cancelled callback must never fire.
type Scheduler interface {
	// RequestFrame queues fn for the next Run call and returns a handle.
	RequestFrame(fn func()) uint64
	// CancelFrame drops a pending frame callback.
	CancelFrame(id uint64)
	// After queues fn to run once delay seconds have passed.
	After(delay float64, fn func()) uint64
	// Cancel drops a pending timer.
	Cancel(id uint64)
}

type frameReq struct {
	id uint64
	fn func()
}

type timerReq struct {
	id  uint64
	due float64
	fn  func()
}

// LoopScheduler is the real Scheduler, pumped once per iteration of the
// desktop loop. Everything runs on the loop goroutine; no locks.
type LoopScheduler struct {
	now    float64
	nextID uint64
	frames []frameReq
	timers []timerReq
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{nextID: 1}
}

func (s *LoopScheduler) Now() float64 { return s.now }

func (s *LoopScheduler) RequestFrame(fn func()) uint64 {
	id := s.nextID
	s.nextID++
	s.frames = append(s.frames, frameReq{id: id, fn: fn})
	return id
}

func (s *LoopScheduler) CancelFrame(id uint64) {
	for i := range s.frames {
		if s.frames[i].id == id {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

func (s *LoopScheduler) After(delay float64, fn func()) uint64 {
	id := s.nextID
	s.nextID++
	s.timers = append(s.timers, timerReq{id: id, due: s.now + delay, fn: fn})
	return id
}

func (s *LoopScheduler) Cancel(id uint64) {
	for i := range s.timers {
		if s.timers[i].id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Run advances the clock, fires due timers, then the frame batch that was
// pending when Run began. Callbacks requeued during Run wait for the next
// frame, which keeps exactly one tick in flight at a time.
func (s *LoopScheduler) Run(now float64) {
	s.now = now

	for i := 0; i < len(s.timers); {
		if s.timers[i].due > now {
			i++
			continue
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		t.fn()
	}

	batch := s.frames
	s.frames = nil
	for _, f := range batch {
		f.fn()
	}
}

// Pending reports whether any callback is still queued.
func (s *LoopScheduler) Pending() bool {
	return len(s.frames) > 0 || len(s.timers) > 0
}
