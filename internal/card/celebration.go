package card

import (
	"fmt"
	"os"
)

// HeartSurface receives the per-tick draw call. A nil surface means no
// drawing; the simulation still runs, matching the no-render-surface
// degradation policy.
type HeartSurface interface {
	DrawHearts(buf []float32)
}

// Celebration composes the heart system with a burst campaign: one big
// burst at the trigger point, a few staggered echoes, then a bounded run
// of small bursts at random spots. A frame callback ticks the system and
// reschedules itself only while hearts remain or the campaign is still
// unrolling; when both are done the loop goes quiet on its own.
type Celebration struct {
	hearts  *HeartSystem
	sched   Scheduler
	surface HeartSurface
	rng     *Rand
	cfg     CampaignConfig

	areaW, areaH float64

	campaign bool
	paused   bool
	frameID  uint64
	frameSet bool
	timerIDs []uint64

	buf []float32
}

func NewCelebration(hearts *HeartSystem, sched Scheduler, surface HeartSurface, seed uint64, cfg CampaignConfig) *Celebration {
	return &Celebration{
		hearts:  hearts,
		sched:   sched,
		surface: surface,
		rng:     NewRand(splitmix64(seed ^ 0xCE1EB8A7E)),
		cfg:     cfg,
		areaW:   WindowWidth,
		areaH:   WindowHeight,
	}
}

// SetArea updates the region follow-up bursts may land in.
func (c *Celebration) SetArea(w, h float64) {
	if w > 0 {
		c.areaW = w
	}
	if h > 0 {
		c.areaH = h
	}
}

// Active reports whether the tick loop still has work: live hearts or a
// campaign with bursts yet to fire.
func (c *Celebration) Active() bool {
	return c.hearts.Count() > 0 || c.campaign
}

// Start launches the campaign at (x, y). Any prior run is stopped first.
func (c *Celebration) Start(x, y float64) {
	c.Stop()
	c.campaign = true

	c.burst(x, y, c.cfg.InitialCount)

	// Staggered echoes flanking the trigger point.
	echoes := [3][2]float64{
		{x - c.areaW*0.22, y - c.areaH*0.10},
		{x + c.areaW*0.22, y - c.areaH*0.14},
		{x, y - c.areaH*0.25},
	}
	for i, at := range echoes {
		ex, ey := at[0], at[1]
		delay := c.cfg.SecondaryDelay * float64(i+1)
		c.addTimer(delay, func() {
			c.burst(ex, ey, c.cfg.SecondaryCount)
		})
	}

	// Bounded series of small bursts at random positions; the last one
	// also retires the campaign flag.
	base := c.cfg.SecondaryDelay * float64(len(echoes))
	for i := 1; i <= c.cfg.FollowUps; i++ {
		last := i == c.cfg.FollowUps
		c.addTimer(base+float64(i)*c.cfg.FollowUpInterval, func() {
			bx := c.rng.RangeF(c.areaW*0.1, c.areaW*0.9)
			by := c.rng.RangeF(c.areaH*0.15, c.areaH*0.75)
			c.burst(bx, by, c.cfg.FollowUpCount)
			if last {
				c.campaign = false
			}
		})
	}
	if c.cfg.FollowUps == 0 {
		c.addTimer(base, func() { c.campaign = false })
	}
}

// Stop cancels every pending callback and clears the hearts. Nothing
// fires after Stop returns.
func (c *Celebration) Stop() {
	if c.frameSet {
		c.sched.CancelFrame(c.frameID)
		c.frameSet = false
	}
	for _, id := range c.timerIDs {
		c.sched.Cancel(id)
	}
	c.timerIDs = c.timerIDs[:0]
	c.campaign = false
	c.hearts.Clear()
}

// Pause stops frame scheduling without dropping state (window hidden).
func (c *Celebration) Pause() {
	c.paused = true
	if c.frameSet {
		c.sched.CancelFrame(c.frameID)
		c.frameSet = false
	}
}

// Resume restarts the loop only if there is still work pending.
func (c *Celebration) Resume() {
	c.paused = false
	c.ensureScheduled()
}

func (c *Celebration) burst(x, y float64, count int) {
	c.hearts.SpawnBurst(x, y, count)
	c.ensureScheduled()
}

func (c *Celebration) addTimer(delay float64, fn func()) {
	var id uint64
	id = c.sched.After(delay, func() {
		c.dropTimer(id)
		fn()
	})
	c.timerIDs = append(c.timerIDs, id)
}

func (c *Celebration) dropTimer(id uint64) {
	for i := range c.timerIDs {
		if c.timerIDs[i] == id {
			c.timerIDs = append(c.timerIDs[:i], c.timerIDs[i+1:]...)
			return
		}
	}
}

func (c *Celebration) ensureScheduled() {
	if c.paused || c.frameSet || !c.Active() {
		return
	}
	c.frameID = c.sched.RequestFrame(c.step)
	c.frameSet = true
}

// step is one tick: update, draw, reap, reschedule. A fault in one tick
// is logged and must not stop future ticks.
func (c *Celebration) step() {
	c.frameSet = false
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "heartfall: celebration tick: %v\n", r)
		}
		c.ensureScheduled()
	}()

	c.hearts.Update()
	if c.surface != nil {
		c.buf = c.hearts.RenderData(c.buf)
		if len(c.buf) > 0 {
			c.surface.DrawHearts(c.buf)
		}
	}
}
