package card

// PlanPlacement computes where the No button should jump to.
//
// container is the card area the button must stay inside (shrunk by
// padding), obstacle is the box the pointer is chasing (expanded by
// buffer into the exclusion zone). The returned point is the target's
// top-left corner and its box never intersects the exclusion zone.
//
// When the usable area collapses to nothing there is no valid region;
// the container centre is returned with searched=false and no
// non-overlap promise. Callers centre the target on that point.
//
// Pure function: identical inputs and rng state give identical output.
func PlanPlacement(container RectF, targetW, targetH float64, obstacle RectF, padding, buffer float64, attempts int, rng *Rand) (x, y float64, searched bool) {
	if targetW <= 0 {
		targetW = DefaultTargetW
	}
	if targetH <= 0 {
		targetH = DefaultTargetH
	}

	usable := container.Inset(padding)
	spanW := usable.W() - targetW
	spanH := usable.H() - targetH
	if spanW <= 0 || spanH <= 0 {
		return container.CenterX(), container.CenterY(), false
	}

	zone := obstacle.Expand(buffer)

	for i := 0; i < attempts; i++ {
		cx := usable.X0 + rng.Float64()*spanW
		cy := usable.Y0 + rng.Float64()*spanH
		box := RectFromSize(cx, cy, targetW, targetH)
		if !box.Intersects(zone) {
			return cx, cy, true
		}
	}

	// All samples landed in the zone: take the usable-area corner
	// diagonally opposite the obstacle, relative to the container centre.
	fx := usable.X0
	if obstacle.CenterX() < container.CenterX() {
		fx = usable.X0 + spanW
	}
	fy := usable.Y0
	if obstacle.CenterY() < container.CenterY() {
		fy = usable.Y0 + spanH
	}
	fx = clampF(fx, usable.X0, usable.X0+spanW)
	fy = clampF(fy, usable.Y0, usable.Y0+spanH)
	return fx, fy, true
}

// EvadeScale maps the running count of clicks on the No button to its
// render scale. The button starts shrinking on the third attempt and
// never goes below 0.6.
func EvadeScale(count int) float64 {
	if count < 3 {
		return 1
	}
	s := 1 - float64(count-2)*0.08
	if s < 0.6 {
		return 0.6
	}
	return s
}

// GuardState is the evasion reentrancy guard.
type GuardState int

const (
	GuardIdle GuardState = iota
	GuardPlanning
	GuardCooldown
)

// EvasionGuard suppresses placement thrashing from rapid pointer
// movement: one synchronous placement at a time, then a short cooldown.
// Time is supplied by the caller so the machine runs without real timers.
type EvasionGuard struct {
	state    GuardState
	until    float64 // cooldown expiry
	Cooldown float64
}

// State resolves cooldown expiry against now.
func (g *EvasionGuard) State(now float64) GuardState {
	if g.state == GuardCooldown && now >= g.until {
		g.state = GuardIdle
	}
	return g.state
}

// TryBegin moves Idle to Planning; any other state rejects the trigger.
func (g *EvasionGuard) TryBegin(now float64) bool {
	if g.State(now) != GuardIdle {
		return false
	}
	g.state = GuardPlanning
	return true
}

// Finish completes a placement and starts the cooldown.
func (g *EvasionGuard) Finish(now float64) {
	g.state = GuardCooldown
	g.until = now + g.Cooldown
}
