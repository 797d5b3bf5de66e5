package card

import "testing"

func testCampaign() CampaignConfig {
	return CampaignConfig{
		InitialCount:     10,
		SecondaryCount:   5,
		SecondaryDelay:   0.1,
		FollowUps:        3,
		FollowUpCount:    2,
		FollowUpInterval: 0.1,
	}
}

// TestCelebrationCampaign verifies the burst schedule: initial burst at
// once, echoes and follow-ups behind timers, campaign flag retiring
// with the last follow-up.
func TestCelebrationCampaign(t *testing.T) {
	sched := newCountingScheduler()
	hearts := NewHeartSystem(MaxHearts, 11, DefaultHearts)
	c := NewCelebration(hearts, sched, nil, 11, testCampaign())
	c.SetArea(800, 600)

	c.Start(400, 300)
	if hearts.Count() != 10 {
		t.Fatalf("initial burst spawned %d hearts, want 10", hearts.Count())
	}
	if !c.Active() {
		t.Fatal("celebration inactive right after start")
	}

	// Echo bursts land at 0.1/0.2/0.3; follow-ups at 0.4/0.5/0.6.
	spawned := 10
	sched.pump(0.01, 0.35, 0.01)
	spawned += 3 * 5
	if hearts.Count() > spawned {
		t.Errorf("after echoes: %d hearts, expected at most %d spawned", hearts.Count(), spawned)
	}
	if !c.campaign {
		t.Error("campaign flag cleared before the follow-up series finished")
	}

	sched.pump(0.36, 0.65, 0.01)
	if c.campaign {
		t.Error("campaign flag still set after the last follow-up burst")
	}
	// Hearts may still be fading, so the loop must stay active.
	if hearts.Count() > 0 && !c.Active() {
		t.Error("active hearts but celebration reports inactive")
	}
}

// TestCelebrationLoopGoesQuiet verifies the hard resource contract:
// once the set empties and the campaign is done, no further frame
// callbacks are requested.
func TestCelebrationLoopGoesQuiet(t *testing.T) {
	sched := newCountingScheduler()
	hearts := NewHeartSystem(MaxHearts, 13, DefaultHearts)
	c := NewCelebration(hearts, sched, nil, 13, testCampaign())
	c.SetArea(800, 600)
	c.Start(400, 300)

	// Plenty of iterations for the campaign plus the slowest fade.
	sched.pump(0.01, 8.0, 0.01)
	if c.Active() {
		t.Fatalf("celebration still active after 800 ticks (%d hearts)", hearts.Count())
	}

	requests := sched.frameRequests
	sched.pump(8.01, 8.2, 0.01)
	if sched.frameRequests != requests {
		t.Errorf("loop kept scheduling after going idle: %d -> %d requests", requests, sched.frameRequests)
	}
	if sched.Pending() {
		t.Error("scheduler still holds pending callbacks after the celebration ended")
	}
}

// TestCelebrationStop verifies cancellation: no callback of any kind
// fires after Stop.
func TestCelebrationStop(t *testing.T) {
	sched := newCountingScheduler()
	hearts := NewHeartSystem(MaxHearts, 17, DefaultHearts)
	c := NewCelebration(hearts, sched, nil, 17, testCampaign())
	c.Start(400, 300)

	c.Stop()
	if hearts.Count() != 0 {
		t.Errorf("Stop left %d hearts behind", hearts.Count())
	}
	if c.Active() {
		t.Error("celebration active after Stop")
	}
	if sched.Pending() {
		t.Error("pending callbacks survived Stop")
	}

	sched.pump(0.01, 1.0, 0.01)
	if hearts.Count() != 0 {
		t.Errorf("an orphaned timer spawned %d hearts after Stop", hearts.Count())
	}
}

// TestCelebrationPauseResume verifies visibility-driven pause: no ticks
// while paused, resumption only while work remains.
func TestCelebrationPauseResume(t *testing.T) {
	sched := newCountingScheduler()
	hearts := NewHeartSystem(MaxHearts, 19, DefaultHearts)
	cfg := testCampaign()
	cfg.SecondaryDelay = 10 // keep timers out of the way
	cfg.FollowUps = 0
	c := NewCelebration(hearts, sched, nil, 19, cfg)
	c.Start(400, 300)

	c.Pause()
	before := hearts.P[0].Opacity
	sched.pump(0.01, 0.05, 0.01)
	if hearts.P[0].Opacity != before {
		t.Error("hearts ticked while paused")
	}

	c.Resume()
	sched.pump(0.06, 0.1, 0.01)
	if hearts.P[0].Opacity >= before {
		t.Error("hearts did not tick after resume")
	}

	// Resume with nothing to do must not schedule.
	c.Stop()
	requests := sched.frameRequests
	c.Resume()
	if sched.frameRequests != requests {
		t.Error("Resume scheduled a frame with no work pending")
	}
}

// TestCelebrationTickRecovers verifies log-and-continue: a fault in one
// tick does not stop future ticks.
func TestCelebrationTickRecovers(t *testing.T) {
	sched := newCountingScheduler()
	hearts := NewHeartSystem(MaxHearts, 23, DefaultHearts)
	surface := &panicSurface{}
	cfg := testCampaign()
	cfg.FollowUps = 0
	cfg.SecondaryDelay = 10
	c := NewCelebration(hearts, sched, surface, 23, cfg)
	c.Start(400, 300)

	sched.pump(0.01, 0.05, 0.01)
	if surface.calls < 2 {
		t.Errorf("tick loop stopped after a panicking draw call (calls=%d)", surface.calls)
	}
}
