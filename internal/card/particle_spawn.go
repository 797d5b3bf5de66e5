package card

import "math"

// SpawnBurst creates count hearts at (x, y) with upward-biased velocity.
// The active set grows by exactly count before the next tick (subject to
// the circular cap).
func (hs *HeartSystem) SpawnBurst(x, y float64, count int) {
	r := NewRand(hash2D(hs.seed^0x4EA87, int(x), int(y)) ^ hs.rng.NextU64())
	for range count {
		hs.Add(Heart{
			X: x, Y: y,
			VX:       r.RangeF(-HeartSpeedX, HeartSpeedX),
			VY:       r.RangeF(-HeartRiseMax, -HeartRiseMin),
			Rotation: r.RangeF(0, 2*math.Pi),
			RotSpeed: r.RangeF(-HeartSpinMax, HeartSpinMax),
			Opacity:  1,
			Fade:     r.RangeF(HeartFadeMin, HeartFadeMax),
			Size:     r.RangeF(HeartSizeMin, HeartSizeMax),
			Col:      hs.palette[r.Intn(len(hs.palette))],
		})
	}
}
