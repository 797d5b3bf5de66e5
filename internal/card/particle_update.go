package card

import "math"

// Update advances every heart by one tick, then reaps in place.
// Per-heart, order-independent:
//
//	vy += gravity; x += vx; y += vy
//	rotation += rotSpeed; opacity -= fade
//	x += sin(rotation) * wobble
//
// A heart whose opacity reaches zero is swap-removed the same tick, so
// the active set never holds an invisible particle across ticks.
func (hs *HeartSystem) Update() {
	for i := 0; i < len(hs.P); {
		p := &hs.P[i]

		p.VY += HeartGravity
		p.X += p.VX
		p.Y += p.VY
		p.Rotation += p.RotSpeed
		p.Opacity -= p.Fade
		p.X += math.Sin(p.Rotation) * HeartWobble

		if p.Opacity <= 0 {
			hs.P[i] = hs.P[len(hs.P)-1]
			hs.P = hs.P[:len(hs.P)-1]
			if hs.ovrIdx > len(hs.P) {
				hs.ovrIdx = len(hs.P)
			}
			continue
		}
		i++
	}
}
