package card

// Test doubles for the timing abstractions: a manual clock and a
// scheduler wrapper that counts frame requests so tests can prove the
// tick loop goes quiet.

type fakeClock struct {
	t float64
}

func (c *fakeClock) Now() float64 { return c.t }

type countingScheduler struct {
	*LoopScheduler
	frameRequests int
}

func newCountingScheduler() *countingScheduler {
	return &countingScheduler{LoopScheduler: NewLoopScheduler()}
}

func (s *countingScheduler) RequestFrame(fn func()) uint64 {
	s.frameRequests++
	return s.LoopScheduler.RequestFrame(fn)
}

// pump runs the scheduler over [from, to] in dt steps.
func (s *countingScheduler) pump(from, to, dt float64) {
	for t := from; t <= to; t += dt {
		s.Run(t)
	}
}

// panicSurface fails its first draw call, then records the rest.
type panicSurface struct {
	calls int
}

func (p *panicSurface) DrawHearts(buf []float32) {
	p.calls++
	if p.calls == 1 {
		panic("first draw call fails")
	}
}
